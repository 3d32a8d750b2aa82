package bootstrap

import (
	"parkshare/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded config so the storage driver can be
// chosen before the graph is built.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Provide(
			func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
			func(cfg config.Config) config.EventsConfig { return cfg.Events },
			func(cfg config.Config) config.JWTConfig { return cfg.JWT },
		),
	)
}
