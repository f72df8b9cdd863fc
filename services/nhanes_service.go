package services

import (
	"errors"
	"fmt"

	"foodie-backend/models"

	"gorm.io/gorm"
)

type NhanesService struct{ db *gorm.DB }

func NewNhanesService(db *gorm.DB) *NhanesService { return &NhanesService{db: db} }

type BenchmarkData struct {
	AgeBin string  `json:"age_bin"`
	Sex    int     `json:"sex"`
	P50    float64 `json:"p50"`
	P75    float64 `json:"p75"`
	N      int     `json:"n"`
}

// Benchmark returns the p50/p75 intake for one nutrient in one survey
// stratum, or nil when no row exists for the stratum.
func (s *NhanesService) Benchmark(nutrient, ageBin string, sex int) (*BenchmarkData, error) {
	var row models.NhanesBenchmark
	err := s.db.Where("age_bin = ? AND sex = ?", ageBin, sex).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	data := &BenchmarkData{AgeBin: row.AgeBin, Sex: row.Sex, N: row.N}
	switch nutrient {
	case "kcal":
		data.P50, data.P75 = row.KcalP50, row.KcalP75
	case "protein":
		data.P50, data.P75 = row.ProteinP50, row.ProteinP75
	case "carb":
		data.P50, data.P75 = row.CarbP50, row.CarbP75
	case "fat":
		data.P50, data.P75 = row.FatP50, row.FatP75
	case "sugar":
		data.P50, data.P75 = row.SugarP50, row.SugarP75
	case "sodium":
		data.P50, data.P75 = row.SodiumP50, row.SodiumP75
	case "fiber":
		data.P50, data.P75 = row.FiberP50, row.FiberP75
	case "cholesterol":
		data.P50, data.P75 = row.CholesterolP50, row.CholesterolP75
	default:
		return nil, fmt.Errorf("unknown nutrient %q", nutrient)
	}
	return data, nil
}

// Seed upserts benchmark rows, keyed by (age_bin, sex). Used by the dev
// seeding endpoint.
func (s *NhanesService) Seed(rows []models.NhanesBenchmark) error {
	for i := range rows {
		var existing models.NhanesBenchmark
		err := s.db.Where("age_bin = ? AND sex = ?", rows[i].AgeBin, rows[i].Sex).First(&existing).Error
		switch {
		case err == nil:
			rows[i].ID = existing.ID
			if err := s.db.Save(&rows[i]).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.db.Create(&rows[i]).Error; err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}
