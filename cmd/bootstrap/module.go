package bootstrap

import (
	"consultation-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.NotificationModule,
	components.UseCaseModule,
	components.HandlerModule,
)
