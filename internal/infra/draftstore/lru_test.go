//go:build unit

package draftstore_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"consultation-booking/internal/domain/draft"
	"consultation-booking/internal/infra/draftstore"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(ttl time.Duration, size int) *draftstore.Store {
	return draftstore.New(config.DraftConfig{TTL: ttl, MaxEntries: size})
}

func TestStore_CreateGetIsolation(t *testing.T) {
	s := newStore(time.Minute, 10)
	d := draft.New(time.Now())
	s.Create(d)

	got, ok := s.Get(d.ID())
	require.True(t, ok)
	assert.Equal(t, d.ID(), got.ID())

	// mutating the returned copy does not touch the stored draft
	got.Reset(d.UpdatedAt().Add(time.Hour))
	again, _ := s.Get(d.ID())
	assert.Equal(t, d.UpdatedAt(), again.UpdatedAt())

	_, ok = s.Get(uuid.New())
	assert.False(t, ok)
}

func TestStore_UpdateCommitsOnlyOnSuccess(t *testing.T) {
	s := newStore(time.Minute, 10)
	d := draft.New(time.Now())
	s.Create(d)

	_, err := s.Update(d.ID(), func(d *draft.Draft) error {
		d.Reset(time.Now().Add(time.Hour))
		return errors.New("rejected")
	})
	require.Error(t, err)
	stored, _ := s.Get(d.ID())
	assert.Equal(t, d.UpdatedAt(), stored.UpdatedAt(), "failed update leaves the draft unchanged")

	_, err = s.Update(uuid.New(), func(*draft.Draft) error { return nil })
	assert.True(t, errs.Is(err, errs.ErrDraftNotFound))
}

func TestStore_UpdateIsSerialized(t *testing.T) {
	s := newStore(time.Minute, 10)
	d := draft.New(time.Now())
	s.Create(d)

	var inside, maxInside int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(d.ID(), func(*draft.Draft) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxInside)
					if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
}

func TestStore_ExpiryAndEviction(t *testing.T) {
	s := newStore(50*time.Millisecond, 2)
	first := draft.New(time.Now())
	s.Create(first)

	assert.Eventually(t, func() bool {
		_, ok := s.Get(first.ID())
		return !ok
	}, time.Second, 10*time.Millisecond)

	s2 := newStore(time.Minute, 2)
	a, b, c := draft.New(time.Now()), draft.New(time.Now()), draft.New(time.Now())
	s2.Create(a)
	s2.Create(b)
	s2.Create(c)
	_, ok := s2.Get(a.ID())
	assert.False(t, ok, "oldest draft evicted past capacity")
	assert.Equal(t, 2, s2.Len())

	s2.Delete(b.ID())
	_, ok = s2.Get(b.ID())
	assert.False(t, ok)
}
