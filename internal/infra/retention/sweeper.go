// Package retention removes device rows that have not reported for longer
// than the configured retention age.
package retention

import (
	"context"
	"log/slog"
	"time"

	"fleettrack/internal/domain/repository"
)

const (
	// DefaultInterval is how often the sweep runs.
	DefaultInterval = 30 * time.Minute

	// DefaultMaxAge is how long a silent device is kept before removal.
	DefaultMaxAge = 24 * time.Hour
)

// Sweeper periodically deletes devices whose last update is older than
// maxAge.
type Sweeper struct {
	logger   *slog.Logger
	repo     repository.DeviceRepository
	interval time.Duration
	maxAge   time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper builds a sweeper. Non-positive durations fall back to the
// defaults.
func NewSweeper(logger *slog.Logger, repo repository.DeviceRepository, interval, maxAge time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	return &Sweeper{
		logger:   logger,
		repo:     repo,
		interval: interval,
		maxAge:   maxAge,
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)

	s.logger.Info("retention sweeper started",
		slog.Duration("interval", s.interval),
		slog.Duration("max_age", s.maxAge),
	)
}

// Stop halts the loop and waits for it to exit.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Sweeper) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx, time.Now())
		}
	}
}

// SweepOnce deletes every device last heard from before now minus maxAge.
func (s *Sweeper) SweepOnce(ctx context.Context, now time.Time) {
	cutoff := now.Add(-s.maxAge)

	deleted, err := s.repo.DeleteStale(ctx, cutoff)
	if err != nil {
		s.logger.Error("retention sweep failed", slog.Any("error", err))

		return
	}

	if deleted > 0 {
		s.logger.Info("retention sweep removed stale devices",
			slog.Int64("deleted", deleted),
			slog.Time("cutoff", cutoff),
		)
	}
}
