package events

import (
	"context"
	"log/slog"
	"time"
)

type Message struct {
	Topic   string
	Key     string
	Value   []byte
	Time    time.Time
	Headers map[string]string
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// LogPublisher stands in for a broker when none is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, msg Message) error {
	p.logger.Info("event published",
		"topic", msg.Topic,
		"key", msg.Key,
		"payload", string(msg.Value))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
