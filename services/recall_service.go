package services

import (
	"math"
	"os"
	"strconv"
	"time"

	"foodie-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultRecallTTLHours = 24

// RecallTTLFromEnv reads RECALL_TTL_HOURS, falling back to 24h.
func RecallTTLFromEnv() time.Duration {
	if v := os.Getenv("RECALL_TTL_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			return time.Duration(h) * time.Hour
		}
	}
	return DefaultRecallTTLHours * time.Hour
}

type RecallQuery struct {
	State string
	Since string // report_date lower bound, YYYYMMDD
	Limit int
	Page  int // 1-based
}

type RecallPage struct {
	Records    []models.RecallRecord `json:"results"`
	Total      int64                 `json:"count"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"totalPages"`
}

// RecallService serves recall queries from the local cache, pulling from
// openFDA only when the cache cannot satisfy the request. Rows older than
// the TTL are invisible to reads; the sweeper deletes them for real.
type RecallService struct {
	db  *gorm.DB
	fda *OpenFDAService
	ttl time.Duration
	hub *RealtimeHub
}

func NewRecallService(db *gorm.DB, fda *OpenFDAService, hub *RealtimeHub) *RecallService {
	return &RecallService{db: db, fda: fda, ttl: RecallTTLFromEnv(), hub: hub}
}

func (s *RecallService) TTL() time.Duration { return s.ttl }

func (s *RecallService) Query(q RecallQuery) (*RecallPage, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	cutoff := time.Now().Add(-s.ttl)

	rows, total, err := s.readPage(q, cutoff)
	if err != nil {
		return nil, err
	}

	// Enough rows for this page, or page 1 with at least something:
	// answer from the cache without touching the feed. Deeper pages that
	// come back empty do trigger a fetch, but under-full non-empty page-1
	// results never do.
	if len(rows) >= q.Limit || (q.Page == 1 && len(rows) > 0) {
		return s.page(q, rows, total), nil
	}

	results, err := s.fda.FetchEnforcements(q.Limit, q.State, q.Since)
	if err != nil {
		return nil, err
	}

	ingested, err := s.ingest(results)
	if err != nil {
		return nil, err
	}
	if ingested > 0 && s.hub != nil {
		s.hub.Broadcast(map[string]any{"kind": "recalls.updated", "count": ingested})
	}

	rows, total, err = s.readPage(q, cutoff)
	if err != nil {
		return nil, err
	}
	return s.page(q, rows, total), nil
}

func (s *RecallService) scoped(q RecallQuery, cutoff time.Time) *gorm.DB {
	tx := s.db.Model(&models.RecallRecord{}).Where("fetched_at >= ?", cutoff)
	if q.State != "" {
		tx = tx.Where("state = ?", q.State)
	}
	if q.Since != "" {
		tx = tx.Where("report_date >= ?", q.Since)
	}
	return tx
}

func (s *RecallService) readPage(q RecallQuery, cutoff time.Time) ([]models.RecallRecord, int64, error) {
	var total int64
	if err := s.scoped(q, cutoff).Count(&total).Error; err != nil {
		return nil, 0, &StorageError{Op: "count recalls", Err: err}
	}

	var rows []models.RecallRecord
	if err := s.scoped(q, cutoff).
		Order("report_date DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, &StorageError{Op: "read recalls", Err: err}
	}
	return rows, total, nil
}

func (s *RecallService) page(q RecallQuery, rows []models.RecallRecord, total int64) *RecallPage {
	return &RecallPage{
		Records:    rows,
		Total:      total,
		Page:       q.Page,
		TotalPages: int(math.Ceil(float64(total) / float64(q.Limit))),
	}
}

// ingest upserts feed rows keyed by recall number. Rows without one cannot
// be deduplicated and are dropped.
func (s *RecallService) ingest(results []EnforcementResult) (int, error) {
	now := time.Now()
	n := 0
	for _, r := range results {
		if r.RecallNumber == "" {
			continue
		}
		rec := models.RecallRecord{
			RecallNumber:        r.RecallNumber,
			ProductDescription:  r.ProductDescription,
			ReasonForRecall:     r.ReasonForRecall,
			RecallingFirm:       r.RecallingFirm,
			Classification:      r.Classification,
			State:               r.State,
			City:                r.City,
			PostalCode:          r.PostalCode,
			DistributionPattern: r.DistributionPattern,
			Status:              r.Status,
			ReportDate:          r.ReportDate,
			FetchedAt:           now,
		}
		if err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recall_number"}},
			UpdateAll: true,
		}).Create(&rec).Error; err != nil {
			return n, &StorageError{Op: "upsert recall", Err: err}
		}
		n++
	}
	return n, nil
}
