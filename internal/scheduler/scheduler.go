package scheduler

import (
	"context"
	"log/slog"
	"time"

	"housing_signals/internal/domain"
	"housing_signals/internal/service"
)

// Syncer is one pipeline's sync entry point.
type Syncer interface {
	Sync(ctx context.Context, opts service.RunOptions) (*domain.RunStats, error)
}

// Scheduler re-runs a sync on a fixed interval (daemon mode). The first
// run starts immediately. A failed run is logged and the schedule
// continues; per-key checkpoints make the retry safe.
type Scheduler struct {
	syncer   Syncer
	opts     service.RunOptions
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, opts service.RunOptions, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		opts:     opts,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if _, err := s.syncer.Sync(syncCtx, s.opts); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
