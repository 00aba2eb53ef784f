package components

import (
	"context"
	"log/slog"

	"consultation-booking/internal/infra/changefeed"
	"consultation-booking/internal/infra/draftstore"
	"consultation-booking/internal/infra/readstore"
	"consultation-booking/internal/infra/repository"
	"consultation-booking/internal/infra/session"
	sqlc "consultation-booking/internal/infra/sqlc/generated"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	stateModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	fx.Annotate(
		NewRepositoryPool,
		fx.As(new(repository.Pool)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			NewChangeFeed,
			fx.As(new(queries.ChangeFeed)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.BookingWriteQueries)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
	),
)

// stateModule holds what lives outside Postgres: admin sessions and drafts.
var stateModule = fx.Module("persistence/state",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
		),
		fx.Annotate(
			NewDraftStore,
			fx.As(new(commands.DraftStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewRepositoryPool(pool *pgxpool.Pool) *pgxpool.Pool {
	return pool
}

func NewChangeFeed(lc fx.Lifecycle, pool *pgxpool.Pool, logger *slog.Logger) *changefeed.Listener {
	listener := changefeed.NewListener(changefeed.PoolConnector(pool), logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			listener.Close()
			return nil
		},
	})
	return listener
}

func NewSessionStore(client *redis.Client, cfg config.Config) *session.RedisStore {
	return session.NewRedisStore(client, cfg.Session)
}

func NewDraftStore(cfg config.Config) *draftstore.Store {
	return draftstore.New(cfg.Draft)
}
