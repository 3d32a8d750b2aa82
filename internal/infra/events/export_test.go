//go:build unit

package events

import (
	"context"

	"github.com/segmentio/kafka-go"
)

var RetryDelay = retryDelay

type WriteMessagesFunc func(ctx context.Context, msgs ...kafka.Message) error

func (f WriteMessagesFunc) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return f(ctx, msgs...)
}

func (f WriteMessagesFunc) Close() error { return nil }

func NewKafkaPublisherWithWriter(write WriteMessagesFunc, prefix string) *KafkaPublisher {
	return newKafkaPublisher(write, prefix)
}
