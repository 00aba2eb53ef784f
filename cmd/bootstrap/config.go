package bootstrap

import (
	"time"

	"consultation-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBusinessLocation,
	),
)

// NewBusinessLocation is the zone every date, slot and display is interpreted in.
func NewBusinessLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Business.Location()
}
