// Package async runs fire-and-forget side effects on a bounded worker pool.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fleettrack/internal/domain/service"
)

const (
	// DefaultMaxInFlight caps concurrent background tasks when config
	// does not say otherwise.
	DefaultMaxInFlight = 32

	taskTimeout = 30 * time.Second
)

// Pool is a bounded TaskRunner. Each task gets its own goroutine and a
// detached context with a deadline. When the pool is saturated the task is
// dropped and logged instead of blocking the caller. Location ingest must
// never stall on push or publish latency.
type Pool struct {
	logger *slog.Logger
	slots  chan struct{}
	wg     sync.WaitGroup
}

var _ service.TaskRunner = (*Pool)(nil)

// NewPool creates a pool allowing up to maxInFlight concurrent tasks.
// Non-positive values fall back to DefaultMaxInFlight.
func NewPool(logger *slog.Logger, maxInFlight int) *Pool {
	if maxInFlight <= 0 {
		maxInFlight = DefaultMaxInFlight
	}

	return &Pool{
		logger: logger,
		slots:  make(chan struct{}, maxInFlight),
	}
}

// Run schedules the task if a slot is free, otherwise drops it.
func (p *Pool) Run(name string, task func(ctx context.Context)) {
	select {
	case p.slots <- struct{}{}:
	default:
		p.logger.Warn("task pool saturated, dropping task", slog.String("task", name))

		return
	}

	p.wg.Add(1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("task panicked",
					slog.String("task", name),
					slog.Any("panic", r),
				)
			}
			<-p.slots
			p.wg.Done()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()

		task(ctx)
	}()
}

// Wait blocks until all in-flight tasks finish. Used during shutdown.
func (p *Pool) Wait() {
	p.wg.Wait()
}
