package repository

import (
	"context"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/converter"
	"consultation-booking/internal/infra/db"
	sqlc "consultation-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (sqlc.Bookings, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

// Pool is the subset of *pgxpool.Pool the repository needs.
type Pool interface {
	sqlc.DBTX
	db.TxBeginner
}

type BookingRepository struct {
	queries BookingWriteQueries
	pool    Pool
}

func NewBookingRepository(queries BookingWriteQueries, pool Pool) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		pool:    pool,
	}
}

// Insert stores b and returns the row with its server-assigned id and timestamps.
func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	return r.insert(ctx, r.pool, b)
}

// InsertBatch stores all bookings in one transaction; nothing is stored on failure.
func (r *BookingRepository) InsertBatch(ctx context.Context, bookings []*booking.Booking) ([]*booking.Booking, error) {
	if len(bookings) == 0 {
		return []*booking.Booking{}, nil
	}
	return db.RunInTx(ctx, r.pool, func(tx sqlc.DBTX) ([]*booking.Booking, error) {
		stored := make([]*booking.Booking, 0, len(bookings))
		for _, b := range bookings {
			s, err := r.insert(ctx, tx, b)
			if err != nil {
				return nil, err
			}
			stored = append(stored, s)
		}
		return stored, nil
	})
}

func (r *BookingRepository) insert(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, error) {
	row, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return nil, infra.WrapPgErr("failed to insert booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) Update(ctx context.Context, id uuid.UUID, changes booking.Changes) (*booking.Booking, error) {
	if changes.IsEmpty() {
		return nil, booking.ErrEmptyChanges
	}
	row, err := r.queries.UpdateBooking(ctx, r.pool, converter.ChangesToUpdateParams(id, changes))
	if err != nil {
		return nil, infra.WrapPgErr("failed to update booking", err)
	}
	return converter.BookingFromRow(row), nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, r.pool, id)
	if err != nil {
		return infra.WrapPgErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
