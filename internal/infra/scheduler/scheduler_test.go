//go:build unit

package scheduler_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"parkshare/internal/infra/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduler() *scheduler.Scheduler {
	return scheduler.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSchedule_RunsAfterDelay(t *testing.T) {
	s := newScheduler()
	defer func() { _ = s.Stop(context.Background()) }()

	ran := make(chan time.Time, 1)
	scheduledAt := time.Now()
	s.Schedule("settle", 20*time.Millisecond, func(context.Context) { ran <- time.Now() })

	select {
	case at := <-ran:
		assert.GreaterOrEqual(t, at.Sub(scheduledAt), 20*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
	assert.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestSchedule_SameKeyReplacesPendingTimer(t *testing.T) {
	s := newScheduler()

	var first, second atomic.Int32
	s.Schedule("payment-settlement:1", time.Hour, func(context.Context) { first.Add(1) })
	s.Schedule("payment-settlement:1", 0, func(context.Context) { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, int32(0), first.Load())
}

func TestSchedule_PanicIsContained(t *testing.T) {
	s := newScheduler()

	done := make(chan struct{})
	s.Schedule("boom", 0, func(context.Context) { panic("boom") })
	s.Schedule("after", 10*time.Millisecond, func(context.Context) { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler stopped running tasks after a panic")
	}
	require.NoError(t, s.Stop(context.Background()))
}

func TestStop(t *testing.T) {
	t.Run("cancels pending timers", func(t *testing.T) {
		s := newScheduler()
		var ran atomic.Bool
		s.Schedule("later", time.Hour, func(context.Context) { ran.Store(true) })

		require.NoError(t, s.Stop(context.Background()))
		assert.Equal(t, 0, s.Pending())
		assert.False(t, ran.Load())
	})

	t.Run("waits for running tasks and cancels their context", func(t *testing.T) {
		s := newScheduler()
		started := make(chan struct{})
		var sawCancel atomic.Bool
		s.Schedule("running", 0, func(ctx context.Context) {
			close(started)
			<-ctx.Done()
			time.Sleep(10 * time.Millisecond)
			sawCancel.Store(true)
		})
		<-started

		require.NoError(t, s.Stop(context.Background()))
		assert.True(t, sawCancel.Load())
	})

	t.Run("drops tasks scheduled afterwards", func(t *testing.T) {
		s := newScheduler()
		require.NoError(t, s.Stop(context.Background()))

		var ran atomic.Bool
		s.Schedule("late", 0, func(context.Context) { ran.Store(true) })
		time.Sleep(20 * time.Millisecond)
		assert.False(t, ran.Load())
		assert.Equal(t, 0, s.Pending())
	})

	t.Run("gives up when the stop context expires", func(t *testing.T) {
		s := newScheduler()
		release := make(chan struct{})
		started := make(chan struct{})
		s.Schedule("stuck", 0, func(context.Context) {
			close(started)
			<-release
		})
		<-started

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, s.Stop(ctx), context.DeadlineExceeded)
		close(release)
	})
}
