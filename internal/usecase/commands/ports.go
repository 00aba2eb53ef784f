package commands

import (
	"context"
	"time"

	"consultation-booking/internal/domain/admin"
	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/draft"
	"consultation-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	InsertBatch(ctx context.Context, bookings []*booking.Booking) ([]*booking.Booking, error)
	Update(ctx context.Context, id uuid.UUID, changes booking.Changes) (*booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DraftStore hands out copies; Update applies fn atomically and keeps the
// stored draft unchanged when fn fails.
type DraftStore interface {
	Create(d *draft.Draft)
	Get(id uuid.UUID) (*draft.Draft, bool)
	Update(id uuid.UUID, fn func(d *draft.Draft) error) (*draft.Draft, error)
	Delete(id uuid.UUID)
}

type SessionStore interface {
	Save(ctx context.Context, s admin.Session) error
	Get(ctx context.Context, id uuid.UUID) (*admin.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SessionTokens interface {
	GenerateToken(sessionID uuid.UUID, username string, issuedAt, expiresAt time.Time) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}

type Attendee struct {
	Email       string
	DisplayName string
	Organizer   bool
	Accepted    bool
}

type CalendarEventRequest struct {
	RequestID   string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attendees   []Attendee
}

type CalendarEventResult struct {
	EventID  string
	HTMLLink string
	MeetLink string
}

type CalendarClient interface {
	CreateEvent(ctx context.Context, req CalendarEventRequest) (*CalendarEventResult, error)
}

type EmailKind string

const (
	EmailClientConfirmation EmailKind = "client_confirmation"
	EmailAdminAlert         EmailKind = "admin_alert"
)

type EmailMessage struct {
	Kind   EmailKind
	Params map[string]string
}

type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

type Metrics interface {
	ObserveConfirmation(status booking.ConfirmationStatus)
	ObserveStep(step string, result booking.StepResult)
	AdminLoginFailed()
}
