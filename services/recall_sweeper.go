package services

import (
	"fmt"
	"log"
	"time"

	"foodie-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// RecallSweeper periodically deletes cache rows past their TTL. Reads
// already filter on fetched_at, so the sweep only reclaims storage.
type RecallSweeper struct {
	cron *cron.Cron
	db   *gorm.DB
	ttl  time.Duration
}

func NewRecallSweeper(db *gorm.DB, ttl time.Duration) *RecallSweeper {
	return &RecallSweeper{cron: cron.New(), db: db, ttl: ttl}
}

// Start registers the hourly sweep and runs one immediately so stale rows
// left over from a previous run don't linger.
func (s *RecallSweeper) Start() error {
	if _, err := s.cron.AddFunc("@every 1h", s.Sweep); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	log.Printf("[recall-sweeper] started, ttl=%s", s.ttl)

	go s.Sweep()
	return nil
}

func (s *RecallSweeper) Stop() {
	s.cron.Stop()
	log.Println("[recall-sweeper] stopped")
}

func (s *RecallSweeper) Sweep() {
	cutoff := time.Now().Add(-s.ttl)
	res := s.db.Where("fetched_at < ?", cutoff).Delete(&models.RecallRecord{})
	if res.Error != nil {
		log.Printf("[recall-sweeper] delete failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[recall-sweeper] removed %d expired recall(s)", res.RowsAffected)
	}
}
