package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs keyed one-shot tasks on timers. Re-scheduling a key replaces
// its pending timer; running tasks are never interrupted except through ctx.
type Scheduler struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	stopped bool
	logger  *slog.Logger
}

func New(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		timers: make(map[string]*time.Timer),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

func (s *Scheduler) Schedule(key string, delay time.Duration, task func(ctx context.Context)) {
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		s.logger.Warn("scheduler stopped, task dropped", "key", key)
		return
	}
	if prev, ok := s.timers[key]; ok && prev.Stop() {
		s.wg.Done()
	}

	s.wg.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		defer s.wg.Done()

		s.mu.Lock()
		if s.timers[key] == timer {
			delete(s.timers, key)
		}
		s.mu.Unlock()

		s.run(key, task)
	})
	s.timers[key] = timer
}

func (s *Scheduler) run(key string, task func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled task panicked", "key", key, "panic", r)
		}
	}()
	if s.ctx.Err() != nil {
		return
	}
	task(s.ctx)
}

// Pending reports how many timers have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels pending timers, cancels the task context and waits for running
// tasks, or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		for key, timer := range s.timers {
			if timer.Stop() {
				s.wg.Done()
			}
			delete(s.timers, key)
		}
	}
	s.mu.Unlock()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
