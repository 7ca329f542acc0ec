package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsJobImmediatelyAndOnInterval(t *testing.T) {
	t.Parallel()

	var runs int64
	s := NewScheduler()
	s.AddJob("counter", 20*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return nil
	})

	s.Start()
	time.Sleep(70 * time.Millisecond)
	s.Stop()

	// One startup run plus at least two interval runs.
	assert.GreaterOrEqual(t, atomic.LoadInt64(&runs), int64(3))
}

func TestScheduler_FailingJobKeepsRunning(t *testing.T) {
	t.Parallel()

	var runs int64
	s := NewScheduler()
	s.AddJob("flaky", 20*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return errors.New("upstream unavailable")
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	// Failures are logged and retried, not fatal.
	assert.GreaterOrEqual(t, atomic.LoadInt64(&runs), int64(2))
}

func TestScheduler_StopWaitsForLoops(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	s := NewScheduler()
	s.AddJob("noop", time.Minute, func(ctx context.Context) error { return nil })

	s.Start()
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after cancelling jobs")
	}
}
