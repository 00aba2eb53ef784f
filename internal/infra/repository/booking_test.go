//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/repository"
	sqlc "consultation-booking/internal/infra/sqlc/generated"
	"consultation-booking/tests/common/builder"
	repositorymock "consultation-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errUndefinedTable = &pgconn.PgError{Code: "42P01", Message: `relation "bookings" does not exist`}

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

type fakePool struct {
	sqlc.DBTX
	tx *fakeTx
}

func (p *fakePool) Begin(context.Context) (pgx.Tx, error) {
	p.tx = &fakeTx{}
	return p.tx, nil
}

func newRepo(t *testing.T) (*repository.BookingRepository, *repositorymock.MockBookingWriteQueries, *fakePool) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	pool := &fakePool{}
	return repository.NewBookingRepository(mockQueries, pool), mockQueries, pool
}

// =============================================================================
// Insert Tests
// =============================================================================

func TestBookingRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: stored row is returned"},
		{name: "error: table missing", returnErr: errUndefinedTable, expectKind: infra.KindSchemaMissing},
		{name: "error: database error", returnErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, _ := newRepo(t)
			b := builder.NewBookingBuilder()
			unsaved, err := b.BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().
				CreateBooking(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
					assert.Equal(t, b.Name, arg.ClientName)
					assert.Equal(t, "confirmed", arg.Status)
					assert.True(t, arg.ClientCompany.Valid)
					if tc.returnErr != nil {
						return sqlc.Bookings{}, tc.returnErr
					}
					return b.BuildInfra(), nil
				})

			stored, err := repo.Insert(ctx, unsaved)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, stored)
				return
			}
			require.NoError(t, err)
			assert.True(t, stored.IsPersisted())
			assert.Equal(t, b.ID, stored.ID())
		})
	}
}

func TestBookingRepository_InsertBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("success: commits once for all rows", func(t *testing.T) {
		repo, mockQueries, pool := newRepo(t)
		builders := []*builder.BookingBuilder{builder.NewBookingBuilder(), builder.NewBookingBuilder()}
		var unsaved []*booking.Booking
		for _, b := range builders {
			d, err := b.BuildDomain()
			require.NoError(t, err)
			unsaved = append(unsaved, d)
		}

		gomock.InOrder(
			mockQueries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(builders[0].BuildInfra(), nil),
			mockQueries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(builders[1].BuildInfra(), nil),
		)

		stored, err := repo.InsertBatch(ctx, unsaved)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.True(t, pool.tx.committed)
		assert.False(t, pool.tx.rolledBack)
	})

	t.Run("error: second row fails and the batch rolls back", func(t *testing.T) {
		repo, mockQueries, pool := newRepo(t)
		first, _ := builder.NewBookingBuilder().BuildDomain()
		second, _ := builder.NewBookingBuilder().BuildDomain()

		gomock.InOrder(
			mockQueries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(builder.NewBookingBuilder().BuildInfra(), nil),
			mockQueries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Bookings{}, errors.New("boom")),
		)

		stored, err := repo.InsertBatch(ctx, []*booking.Booking{first, second})
		require.Error(t, err)
		assert.Nil(t, stored)
		assert.False(t, pool.tx.committed)
		assert.True(t, pool.tx.rolledBack)
	})

	t.Run("empty batch does not open a transaction", func(t *testing.T) {
		repo, _, pool := newRepo(t)
		stored, err := repo.InsertBatch(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, stored)
		assert.Nil(t, pool.tx)
	})
}

// =============================================================================
// Update / Delete Tests
// =============================================================================

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("only requested fields are set", func(t *testing.T) {
		repo, mockQueries, _ := newRepo(t)
		link, err := booking.NewMeetLink("https://meet.google.com/new-link-abc")
		require.NoError(t, err)
		empty := ""

		mockQueries.EXPECT().
			UpdateBooking(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingParams) (sqlc.Bookings, error) {
				assert.Equal(t, id, arg.ID)
				assert.Equal(t, pgtype.Text{String: "https://meet.google.com/new-link-abc", Valid: true}, arg.MeetLink)
				assert.True(t, arg.SetCompany, "empty company clears the column")
				assert.False(t, arg.ClientCompany.Valid)
				assert.False(t, arg.SetExperience)
				return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.ID = id
					b.Company = nil
				}).BuildInfra(), nil
			})

		updated, err := repo.Update(ctx, id, booking.Changes{MeetLink: &link, Company: &empty})
		require.NoError(t, err)
		assert.Equal(t, id, updated.ID())
		assert.Nil(t, updated.Client().Company)
	})

	t.Run("error: no changes", func(t *testing.T) {
		repo, _, _ := newRepo(t)
		_, err := repo.Update(ctx, id, booking.Changes{})
		assert.ErrorIs(t, err, booking.ErrEmptyChanges)
	})

	t.Run("error: booking not found", func(t *testing.T) {
		repo, mockQueries, _ := newRepo(t)
		exp := booking.ExperienceStudent
		mockQueries.EXPECT().UpdateBooking(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		_, err := repo.Update(ctx, id, booking.Changes{Experience: &exp})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		rows       int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row deleted", rows: 1},
		{name: "error: missing id is not found", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: table missing", returnErr: errUndefinedTable, expectKind: infra.KindSchemaMissing},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, _ := newRepo(t)
			mockQueries.EXPECT().DeleteBooking(ctx, gomock.Any(), id).Return(tc.rows, tc.returnErr)

			err := repo.Delete(ctx, id)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
