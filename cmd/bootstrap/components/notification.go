package components

import (
	"context"
	"log/slog"
	"net/http"

	"consultation-booking/internal/infra/calendar"
	"consultation-booking/internal/infra/email"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewCalendarClient,
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)

// NewCalendarClient falls back to a client that always fails, so bookings still
// confirm with a generated meet link when Google is not configured.
func NewCalendarClient(cfg config.Config, logger *slog.Logger) (commands.CalendarClient, error) {
	if !cfg.Calendar.Enabled() {
		logger.Warn("Google Calendar is not configured, events will not be created")
		return calendar.Disabled{}, nil
	}
	client, err := calendar.NewGoogleClient(context.Background(), cfg.Calendar)
	if err != nil {
		return nil, err
	}
	logger.Info("Google Calendar enabled", "calendar_id", cfg.Calendar.CalendarID)
	return client, nil
}

func NewMailer(cfg config.Config, logger *slog.Logger) *email.EmailJSClient {
	if !cfg.Email.Enabled() {
		logger.Warn("EmailJS is not configured, confirmation emails will be skipped")
	}
	return email.NewEmailJSClient(cfg.Email, &http.Client{Timeout: cfg.Email.Timeout})
}
