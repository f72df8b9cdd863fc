package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchEnforcementsBuildsSearchQuery(t *testing.T) {
	var gotLimit, gotSearch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		gotSearch = r.URL.Query().Get("search")
		_, _ = w.Write([]byte(`{"results":[{"recall_number":"R1","product_description":"Spinach","report_date":"20240301"}]}`))
	}))
	defer srv.Close()

	s := &OpenFDAService{baseURL: srv.URL, client: &http.Client{Timeout: 2 * time.Second}}
	results, err := s.FetchEnforcements(25, "NY", "20240101")
	require.NoError(t, err)

	assert.Equal(t, "25", gotLimit)
	assert.Contains(t, gotSearch, `state:"NY"`)
	assert.Contains(t, gotSearch, "report_date:[20240101+TO+*]")

	require.Len(t, results, 1)
	assert.Equal(t, "R1", results[0].RecallNumber)
	assert.Equal(t, "Spinach", results[0].ProductDescription)
}

func TestFetchEnforcementsOmitsEmptySearch(t *testing.T) {
	var hasSearch bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hasSearch = r.URL.Query().Has("search")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	s := &OpenFDAService{baseURL: srv.URL, client: &http.Client{Timeout: 2 * time.Second}}
	results, err := s.FetchEnforcements(10, "", "")
	require.NoError(t, err)

	assert.False(t, hasSearch)
	assert.Empty(t, results)
}

func TestFetchRecentSortsByInitiationDate(t *testing.T) {
	var gotSort string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSort = r.URL.Query().Get("sort")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	s := &OpenFDAService{baseURL: srv.URL, client: &http.Client{Timeout: 2 * time.Second}}
	_, err := s.FetchRecent(100)
	require.NoError(t, err)
	assert.Equal(t, "recall_initiation_date:desc", gotSort)
}

func TestFetchEnforcementsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := &OpenFDAService{baseURL: srv.URL, client: &http.Client{Timeout: 2 * time.Second}}
	_, err := s.FetchEnforcements(10, "", "")

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusTooManyRequests, fe.Status)
}

func TestFetchEnforcementsTransportError(t *testing.T) {
	s := &OpenFDAService{baseURL: "http://127.0.0.1:1", client: &http.Client{Timeout: 500 * time.Millisecond}}
	_, err := s.FetchEnforcements(10, "", "")

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.Status)
}
