package services

import (
	"testing"

	"foodie-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNhanesBenchmarkLookup(t *testing.T) {
	db := newTestDB(t)
	s := NewNhanesService(db)

	require.NoError(t, s.Seed([]models.NhanesBenchmark{{
		Sex: 0, AgeBin: "19-30", N: 1200,
		SodiumP50: 3200, SodiumP75: 4100,
		KcalP50: 2100, KcalP75: 2700,
	}}))

	data, err := s.Benchmark("sodium", "19-30", 0)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, 3200.0, data.P50)
	assert.Equal(t, 4100.0, data.P75)
	assert.Equal(t, 1200, data.N)

	data, err = s.Benchmark("kcal", "19-30", 0)
	require.NoError(t, err)
	assert.Equal(t, 2100.0, data.P50)
}

func TestNhanesBenchmarkMissingStratum(t *testing.T) {
	db := newTestDB(t)
	s := NewNhanesService(db)

	data, err := s.Benchmark("sodium", "71+", 2)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestNhanesBenchmarkUnknownNutrient(t *testing.T) {
	db := newTestDB(t)
	s := NewNhanesService(db)

	require.NoError(t, s.Seed([]models.NhanesBenchmark{{Sex: 0, AgeBin: "19-30"}}))

	_, err := s.Benchmark("caffeine", "19-30", 0)
	assert.Error(t, err)
}

func TestNhanesSeedUpserts(t *testing.T) {
	db := newTestDB(t)
	s := NewNhanesService(db)

	require.NoError(t, s.Seed([]models.NhanesBenchmark{{Sex: 1, AgeBin: "31-50", SodiumP50: 3000}}))
	require.NoError(t, s.Seed([]models.NhanesBenchmark{{Sex: 1, AgeBin: "31-50", SodiumP50: 3500}}))

	var count int64
	require.NoError(t, db.Model(&models.NhanesBenchmark{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	data, err := s.Benchmark("sodium", "31-50", 1)
	require.NoError(t, err)
	assert.Equal(t, 3500.0, data.P50)
}
