package bootstrap

import (
	"context"
	"log/slog"

	"parkshare/internal/infra/scheduler"
	"parkshare/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
		func(s *scheduler.Scheduler) shared.TaskScheduler { return s },
	),
)

// NewScheduler drains pending settlement timers on shutdown. Stopped timers
// are picked up again by ResumePendingSettlements on the next boot.
func NewScheduler(lc fx.Lifecycle, logger *slog.Logger) *scheduler.Scheduler {
	s := scheduler.New(logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return s
}
