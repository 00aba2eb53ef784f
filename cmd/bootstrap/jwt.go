package bootstrap

import (
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/jwt"
	"consultation-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(commands.SessionTokens)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.Session.Secret == "" {
		panic("SESSION_SECRET must not be empty")
	}
	return jwt.NewService(cfg.Session.Secret)
}
