package components

import (
	"time"

	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewOrchestratorConfig,
	NewDraftConfig,
	NewAdminAuthConfig,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrchestrator,
		commands.NewDraftCommands,
		commands.NewAdminAuthCommands,
		commands.NewBookingAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

func NewOrchestratorConfig(cfg config.Config, loc *time.Location) commands.OrchestratorConfig {
	return commands.OrchestratorConfig{
		AdminEmail: cfg.Business.AdminEmail,
		Location:   loc,
	}
}

func NewDraftConfig(cfg config.Config, loc *time.Location) commands.DraftConfig {
	return commands.DraftConfig{
		WindowDays: cfg.Business.WindowDays,
		Location:   loc,
	}
}

func NewAdminAuthConfig(cfg config.Config) commands.AdminAuthConfig {
	return commands.AdminAuthConfig{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
		SessionTTL:   cfg.Session.TTL,
	}
}
