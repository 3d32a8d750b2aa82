package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parkshare/internal/pkg/config"
	"parkshare/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

var (
	ErrNoBrokers  = errs.New("at least one kafka broker is required")
	ErrEmptyKey   = errs.New("event key cannot be empty")
	ErrEmptyValue = errs.New("event payload cannot be empty")
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes every topic through one writer. Messages are hashed by
// key so events of one aggregate keep their order within a partition.
type KafkaPublisher struct {
	writer messageWriter
	prefix string
}

func NewKafkaPublisher(cfg config.EventsConfig, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		MaxAttempts:            3,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("kafka writer error", "detail", fmt.Sprintf(msg, args...))
		}),
	}
	return newKafkaPublisher(writer, cfg.TopicPrefix), nil
}

func newKafkaPublisher(writer messageWriter, prefix string) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, prefix: prefix}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	if msg.Key == "" {
		return ErrEmptyKey
	}
	if len(msg.Value) == 0 {
		return ErrEmptyValue
	}

	kafkaMsg := kafka.Message{
		Topic: p.prefix + msg.Topic,
		Key:   []byte(msg.Key),
		Value: msg.Value,
		Time:  msg.Time,
	}
	for k, v := range msg.Headers {
		kafkaMsg.Headers = append(kafkaMsg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, kafkaMsg); err != nil {
		return errs.Wrapf(err, "failed to write to %s", kafkaMsg.Topic)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
