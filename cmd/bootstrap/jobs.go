package bootstrap

import (
	"context"

	"recruitflow/internal/jobs"
	"recruitflow/internal/pkg/clock"
	"recruitflow/internal/pkg/config"
	"recruitflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Invoke(StartSlotJanitor),
)

func StartSlotJanitor(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock) {
	janitor := jobs.NewSlotJanitor(cfg.Jobs, uow, clk)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return janitor.Start()
		},
		OnStop: func(_ context.Context) error {
			janitor.Stop()
			return nil
		},
	})
}
