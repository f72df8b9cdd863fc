package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultOpenFDABaseURL = "https://api.fda.gov/food/enforcement.json"

type OpenFDAService struct {
	baseURL string
	client  *http.Client
}

// NewOpenFDAService builds a client for the openFDA food enforcement feed.
// OPENFDA_BASE_URL overrides the endpoint (used in tests).
func NewOpenFDAService() *OpenFDAService {
	base := os.Getenv("OPENFDA_BASE_URL")
	if base == "" {
		base = defaultOpenFDABaseURL
	}
	return &OpenFDAService{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type EnforcementResult struct {
	RecallNumber        string `json:"recall_number"`
	ProductDescription  string `json:"product_description"`
	ReasonForRecall     string `json:"reason_for_recall"`
	RecallingFirm       string `json:"recalling_firm"`
	Classification      string `json:"classification"`
	State               string `json:"state"`
	City                string `json:"city"`
	PostalCode          string `json:"postal_code"`
	DistributionPattern string `json:"distribution_pattern"`
	Status              string `json:"status"`
	ReportDate          string `json:"report_date"` // YYYYMMDD
}

type enforcementResponse struct {
	Results []EnforcementResult `json:"results"`
}

// FetchEnforcements queries the feed with the same filters the cache uses.
// The search syntax is openFDA's: state:"NY"+report_date:[20240101+TO+*].
func (s *OpenFDAService) FetchEnforcements(limit int, state, since string) ([]EnforcementResult, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var searchParts []string
	if state != "" {
		searchParts = append(searchParts, fmt.Sprintf("state:%q", state))
	}
	if since != "" {
		searchParts = append(searchParts, fmt.Sprintf("report_date:[%s+TO+*]", since))
	}
	if len(searchParts) > 0 {
		params.Set("search", strings.Join(searchParts, "+"))
	}

	return s.get(s.baseURL + "?" + params.Encode())
}

// FetchRecent pulls the most recent recalls, newest first, for the
// ingredient matcher's window.
func (s *OpenFDAService) FetchRecent(limit int) ([]EnforcementResult, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", "recall_initiation_date:desc")
	return s.get(s.baseURL + "?" + params.Encode())
}

func (s *OpenFDAService) get(u string) ([]EnforcementResult, error) {
	resp, err := s.client.Get(u)
	if err != nil {
		return nil, &FetchError{Msg: "feed unreachable", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Status: resp.StatusCode, Msg: "failed to read response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Status: resp.StatusCode, Msg: resp.Status}
	}

	var er enforcementResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return nil, &FetchError{Status: resp.StatusCode, Msg: "failed to parse feed JSON", Err: err}
	}
	return er.Results, nil
}
