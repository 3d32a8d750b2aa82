package bootstrap

import (
	"context"
	"log/slog"

	"parkshare/internal/infra/events"
	"parkshare/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
		events.NewRelay,
	),
	fx.Invoke(startRelay),
)

// NewPublisher falls back to logging events when no brokers are configured.
func NewPublisher(lc fx.Lifecycle, cfg config.EventsConfig, logger *slog.Logger) (events.Publisher, error) {
	var publisher events.Publisher
	if len(cfg.Brokers) == 0 {
		logger.Info("KAFKA_BROKERS not set, events will only be logged")
		publisher = events.NewLogPublisher(logger)
	} else {
		kafka, err := events.NewKafkaPublisher(cfg, logger)
		if err != nil {
			return nil, err
		}
		publisher = kafka
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func startRelay(lc fx.Lifecycle, relay *events.Relay) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return relay.Stop(ctx)
		},
	})
}
