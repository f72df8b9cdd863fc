package services

import (
	"strings"

	"foodie-backend/models"
)

type RecallAlert struct {
	Ingredient     string `json:"ingredient"`
	RecallProduct  string `json:"recallProduct"`
	Reason         string `json:"reason"`
	RecallDate     string `json:"recallDate"`
	RecallNumber   string `json:"recallNumber"`
	Company        string `json:"company"`
	Classification string `json:"classification"`
}

// MatchIngredients pairs ingredient names with recall records whose product
// description or recall reason textually overlaps the name. Matching is
// case-insensitive substring overlap in either direction — deliberately
// crude, no tokenization or fuzzy matching. Each ingredient is alerted at
// most once, against the first record in the window that matches it.
func MatchIngredients(ingredientNames []string, window []models.RecallRecord) []RecallAlert {
	names := make([]string, 0, len(ingredientNames))
	for _, n := range ingredientNames {
		names = append(names, strings.ToLower(strings.TrimSpace(n)))
	}

	matched := make(map[string]bool, len(names))
	alerts := []RecallAlert{}

	for _, rec := range window {
		product := strings.ToLower(rec.ProductDescription)
		reason := strings.ToLower(rec.ReasonForRecall)

		for _, name := range names {
			if name == "" || matched[name] {
				continue
			}
			if strings.Contains(product, name) ||
				strings.Contains(name, product) ||
				strings.Contains(reason, name) {
				alerts = append(alerts, RecallAlert{
					Ingredient:     name,
					RecallProduct:  rec.ProductDescription,
					Reason:         rec.ReasonForRecall,
					RecallDate:     rec.ReportDate,
					RecallNumber:   rec.RecallNumber,
					Company:        rec.RecallingFirm,
					Classification: rec.Classification,
				})
				matched[name] = true
			}
		}
	}
	return alerts
}

// RecordsFromResults converts feed rows into the matcher's window form.
func RecordsFromResults(results []EnforcementResult) []models.RecallRecord {
	records := make([]models.RecallRecord, 0, len(results))
	for _, r := range results {
		records = append(records, models.RecallRecord{
			RecallNumber:       r.RecallNumber,
			ProductDescription: r.ProductDescription,
			ReasonForRecall:    r.ReasonForRecall,
			RecallingFirm:      r.RecallingFirm,
			Classification:     r.Classification,
			State:              r.State,
			ReportDate:         r.ReportDate,
		})
	}
	return records
}
