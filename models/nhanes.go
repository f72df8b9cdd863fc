package models

// NhanesBenchmark holds population intake percentiles from the NHANES
// dietary survey, one row per (age bin, sex). Sex follows the survey
// coding: 0 = all, 1 = male, 2 = female.
type NhanesBenchmark struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	Sex    int    `gorm:"uniqueIndex:idx_nhanes_bin;not null" json:"sex"`
	AgeBin string `gorm:"size:10;uniqueIndex:idx_nhanes_bin;not null" json:"age_bin"`
	N      int    `json:"n"`

	KcalP50        float64 `json:"kcal_p50"`
	KcalP75        float64 `json:"kcal_p75"`
	ProteinP50     float64 `json:"protein_p50"`
	ProteinP75     float64 `json:"protein_p75"`
	CarbP50        float64 `json:"carb_p50"`
	CarbP75        float64 `json:"carb_p75"`
	FatP50         float64 `json:"fat_p50"`
	FatP75         float64 `json:"fat_p75"`
	SugarP50       float64 `json:"sugar_p50"`
	SugarP75       float64 `json:"sugar_p75"`
	SodiumP50      float64 `json:"sodium_p50"`
	SodiumP75      float64 `json:"sodium_p75"`
	FiberP50       float64 `json:"fiber_p50"`
	FiberP75       float64 `json:"fiber_p75"`
	CholesterolP50 float64 `json:"cholesterol_p50"`
	CholesterolP75 float64 `json:"cholesterol_p75"`
}

func (NhanesBenchmark) TableName() string { return "nhanes_benchmarks" }
