// Package scheduler owns the repeating refresh task. The timer is an
// explicit, stoppable component rather than an ambient process-lifetime
// ticker.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Job is one refresh cycle. Errors are logged and swallowed; a failed
// cycle simply waits for the next tick.
type Job func(ctx context.Context) error

// Config holds configuration for the scheduler.
type Config struct {
	// Interval between runs. Default: 5 minutes.
	Interval time.Duration

	// Clock drives the ticker; tests inject a fake.
	Clock clockwork.Clock

	Logger zerolog.Logger
	Job    Job
}

// Scheduler runs a job once at start and then on a fixed interval until
// stopped.
type Scheduler struct {
	interval time.Duration
	clock    clockwork.Clock
	logger   zerolog.Logger
	job      Job

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// New creates a scheduler.
func New(cfg Config) *Scheduler {
	interval := cfg.Interval
	if interval == 0 {
		interval = 5 * time.Minute
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Scheduler{
		interval: interval,
		clock:    clock,
		logger:   cfg.Logger,
		job:      cfg.Job,
		done:     make(chan struct{}),
	}
}

// Start launches the repeating task: one immediate run, then one per tick.
// Subsequent calls are no-ops.
func (s *Scheduler) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		runCtx, cancel := context.WithCancel(ctx)
		s.cancel = cancel
		go s.run(runCtx)
	})
}

// Stop cancels the repeating task and waits for an in-flight run to
// finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.cancel == nil {
			return
		}
		s.cancel()
		<-s.done
	})
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.runJob(ctx)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.runJob(ctx)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context) {
	start := s.clock.Now()
	if err := s.job(ctx); err != nil {
		s.logger.Error().Err(err).Msg("scheduled refresh failed")
		return
	}
	s.logger.Debug().Dur("duration", s.clock.Now().Sub(start)).Msg("scheduled refresh completed")
}
