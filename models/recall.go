package models

import "time"

// RecallRecord is one cached entry from the openFDA food enforcement feed.
// ReportDate keeps the feed's own YYYYMMDD string form, so lexicographic
// ordering matches chronological ordering.
type RecallRecord struct {
	ID                  uint      `gorm:"primaryKey" json:"-"`
	RecallNumber        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"recall_number"`
	ProductDescription  string    `gorm:"type:text" json:"product_description"`
	ReasonForRecall     string    `gorm:"type:text" json:"reason_for_recall"`
	RecallingFirm       string    `json:"recalling_firm"`
	Classification      string    `gorm:"size:20" json:"classification"`
	State               string    `gorm:"size:10;index:idx_recall_state_date,priority:1" json:"state"`
	City                string    `json:"city"`
	PostalCode          string    `json:"postal_code"`
	DistributionPattern string    `gorm:"type:text" json:"distribution_pattern"`
	Status              string    `json:"status"`
	ReportDate          string    `gorm:"size:8;index:idx_recall_state_date,priority:2" json:"report_date"`
	FetchedAt           time.Time `gorm:"index" json:"fetchedAt"`
}
