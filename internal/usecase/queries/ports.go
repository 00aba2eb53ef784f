package queries

import (
	"context"
	"time"

	"consultation-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	ListAll(ctx context.Context) ([]*booking.Booking, error)
	ListForDate(ctx context.Context, date time.Time) ([]*booking.Booking, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]*booking.Booking, error)
	ListPast(ctx context.Context, now time.Time) ([]*booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	IsSlotTaken(ctx context.Context, dateTime time.Time) (bool, error)
}

// Subscription is an owned live feed of booking changes. Events is closed when
// the feed drops; Close is idempotent.
type Subscription interface {
	Events() <-chan booking.ChangeEvent
	Close()
}

type ChangeFeed interface {
	Subscribe(ctx context.Context, owner string) (Subscription, error)
}
