package bootstrap

import (
	"consultation-booking/internal/handler"
	"consultation-booking/internal/infra/metrics"
	"consultation-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(new(commands.Metrics)),
			fx.As(new(handler.MetricsExporter)),
		),
	),
)
