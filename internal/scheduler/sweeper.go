package scheduler

import (
	"fmt"
	"time"

	"quiz-forge/internal/logger"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Purger removes expired entries and reports how many were dropped.
type Purger interface {
	PurgeExpired() int
}

// SessionSweeper periodically purges expired sessions from an in-memory store.
type SessionSweeper struct {
	scheduler *gocron.Scheduler
	purger    Purger
	interval  time.Duration
}

// NewSessionSweeper creates a sweeper that runs every interval.
func NewSessionSweeper(purger Purger, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		scheduler: gocron.NewScheduler(time.UTC),
		purger:    purger,
		interval:  interval,
	}
}

// Start schedules the sweep and runs the scheduler in the background.
func (s *SessionSweeper) Start() error {
	if s.interval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", s.interval)
	}
	if _, err := s.scheduler.Every(s.interval).Do(s.sweep); err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	s.scheduler.StartAsync()
	logger.Get().Info("Session sweeper started", zap.Duration("interval", s.interval))
	return nil
}

// Stop terminates the scheduler.
func (s *SessionSweeper) Stop() {
	s.scheduler.Stop()
}

func (s *SessionSweeper) sweep() {
	if removed := s.purger.PurgeExpired(); removed > 0 {
		logger.Get().Info("Purged expired sessions", zap.Int("count", removed))
	}
}
