package scheduler_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airsight/airsight/internal/scheduler"
)

func TestScheduler_RunsAtStartAndOnTicks(t *testing.T) {
	clock := clockwork.NewFakeClock()
	runs := make(chan struct{}, 16)

	s := scheduler.New(scheduler.Config{
		Interval: 5 * time.Minute,
		Clock:    clock,
		Logger:   zerolog.New(io.Discard),
		Job: func(context.Context) error {
			runs <- struct{}{}
			return nil
		},
	})

	s.Start(context.Background())
	defer s.Stop()

	// One run happens immediately at startup.
	awaitRun(t, runs)

	// Then one per tick.
	clock.BlockUntil(1)
	clock.Advance(5 * time.Minute)
	awaitRun(t, runs)

	clock.BlockUntil(1)
	clock.Advance(5 * time.Minute)
	awaitRun(t, runs)
}

func TestScheduler_JobErrorDoesNotStopTicks(t *testing.T) {
	clock := clockwork.NewFakeClock()
	runs := make(chan struct{}, 16)

	s := scheduler.New(scheduler.Config{
		Interval: 5 * time.Minute,
		Clock:    clock,
		Logger:   zerolog.New(io.Discard),
		Job: func(context.Context) error {
			runs <- struct{}{}
			return errors.New("feed unavailable")
		},
	})

	s.Start(context.Background())
	defer s.Stop()

	awaitRun(t, runs)
	clock.BlockUntil(1)
	clock.Advance(5 * time.Minute)
	awaitRun(t, runs)
}

func TestScheduler_StopWaitsForLoopExit(t *testing.T) {
	clock := clockwork.NewFakeClock()

	s := scheduler.New(scheduler.Config{
		Interval: time.Minute,
		Clock:    clock,
		Logger:   zerolog.New(io.Discard),
		Job:      func(context.Context) error { return nil },
	})

	s.Start(context.Background())
	s.Stop()

	// Stop is idempotent.
	assert.NotPanics(t, s.Stop)
}

func TestScheduler_StopBeforeStart(t *testing.T) {
	s := scheduler.New(scheduler.Config{
		Logger: zerolog.New(io.Discard),
		Job:    func(context.Context) error { return nil },
	})

	assert.NotPanics(t, s.Stop)
}

func awaitRun(t *testing.T, runs <-chan struct{}) {
	t.Helper()
	select {
	case <-runs:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "job did not run in time")
	}
}
