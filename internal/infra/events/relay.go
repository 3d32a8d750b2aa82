package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"parkshare/internal/pkg/clock"
	"parkshare/internal/pkg/config"
	"parkshare/internal/usecase/shared"
)

const (
	baseRetryDelay = time.Second
	maxRetryDelay  = 5 * time.Minute
)

// Relay drains the transactional outbox into a Publisher. A batch is claimed,
// published and marked inside one unit of work, so rows claimed by a crashed
// relay return to the queue with the rolled back transaction.
type Relay struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	interval    time.Duration
	batchSize   int32
	maxAttempts int32
	logger      *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.EventsConfig, logger *slog.Logger) *Relay {
	return &Relay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		interval:    cfg.PollInterval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
		logger:      logger,
	}
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
					r.logger.Error("outbox relay batch failed", "error", err)
				}
			}
		}
	}()
}

func (r *Relay) Stop(ctx context.Context) error {
	var err error
	r.once.Do(func() {
		if r.cancel == nil {
			return
		}
		r.cancel()
		select {
		case <-r.done:
		case <-ctx.Done():
			err = ctx.Err()
		}
	})
	return err
}

// RunOnce processes one batch and reports how many events were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		batch, err := tx.Outbox().ClaimDue(ctx, now, r.batchSize)
		if err != nil {
			return err
		}

		for _, event := range batch {
			pubErr := r.publisher.Publish(ctx, Message{
				Topic: event.Topic,
				Key:   event.Key,
				Value: event.Payload,
				Time:  event.CreatedAt,
				Headers: map[string]string{
					"event_id": event.ID.String(),
				},
			})
			if pubErr == nil {
				if err := tx.Outbox().MarkSent(ctx, event.ID, now); err != nil {
					return err
				}
				published++
				continue
			}

			attempts := event.Attempts + 1
			if attempts >= r.maxAttempts {
				r.logger.Error("outbox event abandoned",
					"event_id", event.ID,
					"topic", event.Topic,
					"attempts", attempts,
					"error", pubErr)
				if err := tx.Outbox().MarkFailed(ctx, event.ID, attempts, pubErr.Error(), now); err != nil {
					return err
				}
				continue
			}

			r.logger.Warn("outbox publish failed, will retry",
				"event_id", event.ID,
				"topic", event.Topic,
				"attempts", attempts,
				"error", pubErr)
			if err := tx.Outbox().MarkRetry(ctx, event.ID, attempts, now.Add(retryDelay(attempts)), pubErr.Error()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}

func retryDelay(attempts int32) time.Duration {
	delay := baseRetryDelay
	for i := int32(1); i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}
