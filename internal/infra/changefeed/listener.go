package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	Channel           = "bookings_changes"
	defaultBufferSize = 16
	unlistenTimeout   = 3 * time.Second
)

var ErrListenFailed = errs.New("failed to listen for booking changes")

// Conn is a dedicated connection held for the lifetime of one subscription.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Release()
}

type Connector func(ctx context.Context) (Conn, error)

type poolConn struct {
	*pgxpool.Conn
}

func (c poolConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	return c.Conn.Conn().WaitForNotification(ctx)
}

func PoolConnector(pool *pgxpool.Pool) Connector {
	return func(ctx context.Context) (Conn, error) {
		c, err := pool.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		return poolConn{c}, nil
	}
}

type Listener struct {
	connect    Connector
	logger     *slog.Logger
	bufferSize int

	mu     sync.Mutex
	active map[string]*Subscription
}

func NewListener(connect Connector, logger *slog.Logger) *Listener {
	return &Listener{
		connect:    connect,
		logger:     logger,
		bufferSize: defaultBufferSize,
		active:     make(map[string]*Subscription),
	}
}

// Subscribe acquires a connection and starts LISTEN on Channel. The caller owns
// the returned Subscription and must Close it.
func (l *Listener) Subscribe(ctx context.Context, owner string) (queries.Subscription, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.active[owner]; ok {
		return nil, errs.ErrSubscriptionActive
	}

	conn, err := l.connect(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "acquire listen connection"), ErrListenFailed)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{Channel}.Sanitize()); err != nil {
		conn.Release()
		return nil, errs.Mark(errs.Wrap(err, "listen"), ErrListenFailed)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := &Subscription{
		owner:    owner,
		listener: l,
		conn:     conn,
		events:   make(chan booking.ChangeEvent, l.bufferSize),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	l.active[owner] = sub
	go sub.run(runCtx)

	l.logger.Debug("Change feed subscribed", "owner", owner)
	return sub, nil
}

func (l *Listener) ActiveCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.active)
}

// Close releases every active subscription.
func (l *Listener) Close() {
	l.mu.Lock()
	subs := make([]*Subscription, 0, len(l.active))
	for _, s := range l.active {
		subs = append(subs, s)
	}
	l.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
}

func (l *Listener) forget(s *Subscription) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active[s.owner] == s {
		delete(l.active, s.owner)
	}
}

type Subscription struct {
	owner    string
	listener *Listener
	conn     Conn
	events   chan booking.ChangeEvent
	cancel   context.CancelFunc
	done     chan struct{}
	once     sync.Once
}

// Events is closed when the connection drops or Close is called. Bursts of
// notifications are coalesced when the buffer is full.
func (s *Subscription) Events() <-chan booking.ChangeEvent {
	return s.events
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.cancel()
		<-s.done

		ctx, cancel := context.WithTimeout(context.Background(), unlistenTimeout)
		defer cancel()
		if _, err := s.conn.Exec(ctx, "UNLISTEN *"); err != nil {
			s.listener.logger.Warn("Failed to unlisten", "owner", s.owner, "error", err)
		}
		s.conn.Release()
		s.listener.forget(s)
		s.listener.logger.Debug("Change feed released", "owner", s.owner)
	})
}

func (s *Subscription) run(ctx context.Context) {
	defer close(s.done)
	defer close(s.events)

	for {
		n, err := s.conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() == nil {
				s.listener.logger.Warn("Change feed dropped", "owner", s.owner, "error", err)
			}
			return
		}

		var ev booking.ChangeEvent
		if err := json.Unmarshal([]byte(n.Payload), &ev); err != nil {
			s.listener.logger.Warn("Ignoring malformed change payload", "payload", n.Payload, "error", err)
			continue
		}

		select {
		case s.events <- ev:
		default:
		}
	}
}
