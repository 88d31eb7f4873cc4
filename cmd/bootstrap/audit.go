package bootstrap

import (
	"recruitflow/internal/audit"

	"go.uber.org/fx"
)

var AuditModule = fx.Module("audit",
	fx.Provide(
		fx.Annotate(
			audit.NewPostgresSink,
			fx.As(new(audit.Sink)),
		),
	),
)
