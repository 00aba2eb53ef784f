package components

import (
	"time"

	"consultation-booking/internal/handler"
	"consultation-booking/internal/handler/api"
	"consultation-booking/internal/handler/middleware"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAvailabilityHandler,
		api.NewDraftHandler,
		NewAuthHandler,
		api.NewBookingHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAvailabilityHandler(clk clock.Clock, cfg config.Config, loc *time.Location) *api.AvailabilityHandler {
	return api.NewAvailabilityHandler(clk, api.AvailabilityConfig{
		WindowDays: cfg.Business.WindowDays,
		Location:   loc,
	})
}

func NewAuthHandler(auth commands.AdminAuthCommands, clk clock.Clock, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(auth, clk, cfg.Cookie)
}

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

func NewHandlers(
	availability *api.AvailabilityHandler,
	draft *api.DraftHandler,
	auth *api.AuthHandler,
	booking *api.BookingHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Draft:        draft,
		Auth:         auth,
		Booking:      booking,
	}
}
