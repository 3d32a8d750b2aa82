package bootstrap

import (
	"parkshare/cmd/bootstrap/components"
	"parkshare/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		PersistenceModule(cfg.Storage.Driver),
		SchedulerModule,
		EventsModule,
		components.UseCaseModule,
		components.HandlerModule,
	)
}

// PersistenceModule picks the storage implementation behind shared.UnitOfWork
// and the read stores.
func PersistenceModule(driver string) fx.Option {
	if driver == config.StorageDriverMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(DBModule, components.PostgresPersistenceModule)
}
