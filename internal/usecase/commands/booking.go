package commands

import (
	"context"
	"log/slog"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// UpdateBookingInput holds the raw correction fields; nil means unchanged and an
// empty Company or Experience clears the stored value.
type UpdateBookingInput struct {
	MeetLink   *string
	Company    *string
	Experience *string
}

type BookingAdminCommands interface {
	Delete(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, in UpdateBookingInput) (*booking.Booking, error)
	Seed(ctx context.Context, bookings []*booking.Booking) ([]*booking.Booking, error)
}

type bookingAdminCommandsImpl struct {
	repo BookingRepository
}

func NewBookingAdminCommands(repo BookingRepository) BookingAdminCommands {
	return &bookingAdminCommandsImpl{repo: repo}
}

func (c *bookingAdminCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return shared.TranslateBookingErr(err)
	}
	slog.Info("Booking deleted", "booking_id", id)
	return nil
}

func (c *bookingAdminCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateBookingInput) (*booking.Booking, error) {
	changes, err := in.toChanges()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	b, err := c.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, shared.TranslateBookingErr(err)
	}
	return b, nil
}

// Seed inserts every booking in one transaction or none at all.
func (c *bookingAdminCommandsImpl) Seed(ctx context.Context, bookings []*booking.Booking) ([]*booking.Booking, error) {
	saved, err := c.repo.InsertBatch(ctx, bookings)
	if err != nil {
		return nil, shared.TranslateBookingErr(err)
	}
	return saved, nil
}

func (in UpdateBookingInput) toChanges() (booking.Changes, error) {
	var ch booking.Changes
	if in.MeetLink != nil {
		link, err := booking.NewMeetLink(*in.MeetLink)
		if err != nil {
			return booking.Changes{}, err
		}
		ch.MeetLink = &link
	}
	if in.Company != nil {
		company := *in.Company
		ch.Company = &company
	}
	if in.Experience != nil {
		exp, err := booking.NewExperience(*in.Experience)
		if err != nil {
			return booking.Changes{}, err
		}
		ch.Experience = &exp
	}
	if ch.IsEmpty() {
		return booking.Changes{}, booking.ErrEmptyChanges
	}
	return ch, nil
}
