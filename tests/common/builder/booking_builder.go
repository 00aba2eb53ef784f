//go:build unit || e2e

package builder

import (
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/draft"
	sqlc "consultation-booking/internal/infra/sqlc/generated"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID         uuid.UUID
	DateTime   time.Time
	Name       string
	Email      string
	Company    *string
	Experience string
	Topic      string
	MeetLink   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	company := gofakeit.Company()
	return &BookingBuilder{
		ID:         uuid.New(),
		DateTime:   now.Add(72 * time.Hour).Truncate(30 * time.Minute),
		Name:       gofakeit.Name(),
		Email:      gofakeit.Email(),
		Company:    &company,
		Experience: string(booking.ExperienceSenior),
		Topic:      string(booking.TopicCodeReview),
		MeetLink:   "https://meet.google.com/abc-defg-hij",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	client, err := booking.NewClient(b.Name, b.Email, b.Company, b.Experience)
	if err != nil {
		return nil, err
	}
	link, err := booking.NewMeetLink(b.MeetLink)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.DateTime, client, booking.ReconstructTopic(b.Topic), link)
}

// BuildStored returns the booking as read back from the store.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID,
		b.DateTime,
		booking.ReconstructClient(b.Name, b.Email, b.Company, b.Experience),
		booking.ReconstructTopic(b.Topic),
		booking.ReconstructMeetLink(b.MeetLink),
		booking.StatusConfirmed,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	company := pgtype.Text{Valid: false}
	if b.Company != nil {
		company = pgtype.Text{String: *b.Company, Valid: true}
	}
	experience := pgtype.Text{Valid: false}
	if b.Experience != "" {
		experience = pgtype.Text{String: b.Experience, Valid: true}
	}
	return sqlc.Bookings{
		ID:               b.ID,
		CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		DateTime:         pgtype.Timestamptz{Time: b.DateTime, Valid: true},
		ClientName:       b.Name,
		ClientEmail:      b.Email,
		ClientCompany:    company,
		ClientExperience: experience,
		Topic:            b.Topic,
		MeetLink:         b.MeetLink,
		Status:           string(booking.StatusConfirmed),
		UpdatedAt:        pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildDetails() draft.Details {
	company := ""
	if b.Company != nil {
		company = *b.Company
	}
	return draft.Details{
		Name:       b.Name,
		Email:      b.Email,
		Company:    company,
		Experience: b.Experience,
		Topic:      b.Topic,
	}
}
