//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"consultation-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertBooking writes the builder's row as is, bypassing the repository.
func InsertBooking(t *testing.T, db DBLike, b *builder.BookingBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	ctx := context.Background()
	var id uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO "bookings" ("id", "date_time", "client_name", "client_email", "client_company",
		    "client_experience", "topic", "meet_link", "status", "created_at", "updated_at")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING "id"`,
		row.ID, row.DateTime, row.ClientName, row.ClientEmail, row.ClientCompany,
		row.ClientExperience, row.Topic, row.MeetLink, row.Status, row.CreatedAt, row.UpdatedAt,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func CountBookings(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT count(*) FROM "bookings"`).Scan(&n)
	require.NoError(t, err)
	return n
}

// DropBookingsTable simulates a database where setup was never run.
func DropBookingsTable(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		DROP TABLE IF EXISTS "bookings" CASCADE;
		DROP FUNCTION IF EXISTS "bookings_notify_change"();`)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
