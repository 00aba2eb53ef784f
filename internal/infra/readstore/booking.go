package readstore

import (
	"context"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/converter"
	sqlc "consultation-booking/internal/infra/sqlc/generated"
	"consultation-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	ListBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Bookings, error)
	ListBookingsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsInRangeParams) ([]sqlc.Bookings, error)
	ListUpcomingBookings(ctx context.Context, db sqlc.DBTX, dateTime pgtype.Timestamptz) ([]sqlc.Bookings, error)
	ListPastBookings(ctx context.Context, db sqlc.DBTX, dateTime pgtype.Timestamptz) ([]sqlc.Bookings, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	CountBookingsAt(ctx context.Context, db sqlc.DBTX, dateTime pgtype.Timestamptz) (int64, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// ListAll returns every booking, newest first.
func (r *BookingReadStore) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list bookings", err)
	}
	return converter.BookingsFromRows(rows), nil
}

// ListForDate returns bookings in [date 00:00Z, date+1 00:00Z) by start time.
func (r *BookingReadStore) ListForDate(ctx context.Context, date time.Time) ([]*booking.Booking, error) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	params := sqlc.ListBookingsInRangeParams{
		StartAt: pgconv.TimeToPgtype(start),
		EndAt:   pgconv.TimeToPgtype(start.AddDate(0, 0, 1)),
	}
	rows, err := r.queries.ListBookingsInRange(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list bookings for date", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) ListUpcoming(ctx context.Context, now time.Time) ([]*booking.Booking, error) {
	rows, err := r.queries.ListUpcomingBookings(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapPgErr("failed to list upcoming bookings", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) ListPast(ctx context.Context, now time.Time) ([]*booking.Booking, error) {
	rows, err := r.queries.ListPastBookings(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapPgErr("failed to list past bookings", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr("booking not found", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingReadStore) IsSlotTaken(ctx context.Context, dateTime time.Time) (bool, error) {
	n, err := r.queries.CountBookingsAt(ctx, r.db, pgconv.TimeToPgtype(dateTime.UTC()))
	if err != nil {
		return false, infra.WrapPgErr("failed to check slot", err)
	}
	return n > 0, nil
}
