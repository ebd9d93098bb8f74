package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/repository"
	"github.com/Tom0603/SoftwareEngineering-Lecture/pkg/logger"
)

// Sweeper deletes listings past the retention age. It runs unattended, so
// store errors are logged and swallowed, never propagated.
type Sweeper struct {
	repo          repository.ListingRepository
	retentionDays int
	interval      time.Duration
}

func NewSweeper(repo repository.ListingRepository, retentionDays int, interval time.Duration) *Sweeper {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Sweeper{repo: repo, retentionDays: retentionDays, interval: interval}
}

// PurgeOlderThan deletes every listing created strictly before now minus the
// given number of days.
func (s *Sweeper) PurgeOlderThan(ctx context.Context, days int) {
	cutoff := time.Now().AddDate(0, 0, -days)
	deleted, err := s.repo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		logger.Warn("retention sweep failed", zap.Int("older_than_days", days), zap.Error(err))
		return
	}
	logger.Info("retention sweep done", zap.Int("older_than_days", days), zap.Int64("deleted", deleted))
}

// Start launches the periodic sweep and returns a stop function.
func (s *Sweeper) Start() func(context.Context) error {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				s.PurgeOlderThan(ctx, s.retentionDays)
				cancel()
			case <-stopCh:
				return
			}
		}
	}()
	return func(ctx context.Context) error {
		close(stopCh)
		return nil
	}
}
