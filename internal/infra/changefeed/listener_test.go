//go:build unit

package changefeed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/infra/changefeed"
	"consultation-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	execs    []string
	released bool
	notes    chan *pgconn.Notification
	dropErr  chan error
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		notes:   make(chan *pgconn.Notification, 8),
		dropErr: make(chan error, 1),
	}
}

func (c *fakeConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.execs = append(c.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (c *fakeConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	select {
	case n := <-c.notes:
		return n, nil
	case err := <-c.dropErr:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *fakeConn) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.released = true
}

func (c *fakeConn) snapshot() ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.execs...), c.released
}

func newListener(conns ...*fakeConn) *changefeed.Listener {
	var mu sync.Mutex
	i := 0
	connect := func(context.Context) (changefeed.Conn, error) {
		mu.Lock()
		defer mu.Unlock()
		if i >= len(conns) {
			return nil, errors.New("pool exhausted")
		}
		c := conns[i]
		i++
		return c, nil
	}
	return changefeed.NewListener(connect, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListener_DeliversEvents(t *testing.T) {
	conn := newFakeConn()
	l := newListener(conn)

	sub, err := l.Subscribe(context.Background(), "session-1")
	require.NoError(t, err)
	defer sub.Close()

	id := uuid.New()
	conn.notes <- &pgconn.Notification{Channel: changefeed.Channel, Payload: `{"op":"INSERT","id":"` + id.String() + `"}`}

	select {
	case ev := <-sub.Events():
		assert.Equal(t, booking.ChangeInsert, ev.Op)
		assert.Equal(t, id, ev.ID)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}

	execs, _ := conn.snapshot()
	assert.Equal(t, []string{`LISTEN "bookings_changes"`}, execs)
}

func TestListener_SkipsMalformedPayload(t *testing.T) {
	conn := newFakeConn()
	l := newListener(conn)
	sub, err := l.Subscribe(context.Background(), "session-1")
	require.NoError(t, err)
	defer sub.Close()

	conn.notes <- &pgconn.Notification{Payload: "not json"}
	conn.notes <- &pgconn.Notification{Payload: `{"op":"DELETE","id":"` + uuid.NewString() + `"}`}

	select {
	case ev := <-sub.Events():
		assert.Equal(t, booking.ChangeDelete, ev.Op)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestListener_OneSubscriptionPerOwner(t *testing.T) {
	l := newListener(newFakeConn(), newFakeConn(), newFakeConn())

	first, err := l.Subscribe(context.Background(), "session-1")
	require.NoError(t, err)

	_, err = l.Subscribe(context.Background(), "session-1")
	assert.ErrorIs(t, err, errs.ErrSubscriptionActive)

	other, err := l.Subscribe(context.Background(), "session-2")
	require.NoError(t, err)
	assert.Equal(t, 2, l.ActiveCount())

	first.Close()
	again, err := l.Subscribe(context.Background(), "session-1")
	require.NoError(t, err, "owner may subscribe again after close")

	again.Close()
	other.Close()
	assert.Equal(t, 0, l.ActiveCount())
}

func TestSubscription_CloseIsIdempotentAndReleases(t *testing.T) {
	conn := newFakeConn()
	l := newListener(conn)
	sub, err := l.Subscribe(context.Background(), "session-1")
	require.NoError(t, err)

	sub.Close()
	sub.Close()

	_, open := <-sub.Events()
	assert.False(t, open, "events channel closes on Close")

	execs, released := conn.snapshot()
	assert.True(t, released)
	assert.Equal(t, []string{`LISTEN "bookings_changes"`, "UNLISTEN *"}, execs)
	assert.Equal(t, 0, l.ActiveCount())
}

func TestSubscription_DropClosesEvents(t *testing.T) {
	conn := newFakeConn()
	l := newListener(conn)
	sub, err := l.Subscribe(context.Background(), "session-1")
	require.NoError(t, err)

	conn.dropErr <- errors.New("conn closed")

	select {
	case _, open := <-sub.Events():
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("events channel not closed after drop")
	}

	// the connection is released only by the owner
	_, released := conn.snapshot()
	assert.False(t, released)
	sub.Close()
	_, released = conn.snapshot()
	assert.True(t, released)
}

func TestListener_ConnectFailure(t *testing.T) {
	l := newListener()
	_, err := l.Subscribe(context.Background(), "session-1")
	assert.True(t, errs.Is(err, changefeed.ErrListenFailed), "got %v", err)
	assert.Equal(t, 0, l.ActiveCount())
}
