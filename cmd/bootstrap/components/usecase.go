package components

import (
	"context"
	"log/slog"

	"parkshare/internal/pkg/clock"
	"parkshare/internal/usecase"
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(resumeSettlements),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewResourceUseCase,
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewReviewUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewResourceQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// resumeSettlements re-arms the confirmation timer of every payment left
// pending by a previous process.
func resumeSettlements(lc fx.Lifecycle, payments commands.PaymentCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			n, err := payments.ResumePendingSettlements(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Info("resumed pending settlements", "count", n)
			}
			return nil
		},
	})
}
