package draftstore

import (
	"sync"

	"consultation-booking/internal/domain/draft"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store keeps drafts in process memory. Entries expire DraftConfig.TTL after
// their last write and the least recently used ones are evicted past MaxEntries.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[uuid.UUID, *draft.Draft]
}

func New(cfg config.DraftConfig) *Store {
	return &Store{
		cache: expirable.NewLRU[uuid.UUID, *draft.Draft](cfg.MaxEntries, nil, cfg.TTL),
	}
}

func (s *Store) Create(d *draft.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(d.ID(), d.Clone())
}

func (s *Store) Get(id uuid.UUID) (*draft.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Update runs fn on a copy under the store lock and commits the copy only when
// fn succeeds. fn must not block.
func (s *Store) Update(id uuid.UUID, fn func(d *draft.Draft) error) (*draft.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.cache.Get(id)
	if !ok {
		return nil, errs.ErrDraftNotFound
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	s.cache.Add(id, next)
	return next.Clone(), nil
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(id)
}

func (s *Store) Len() int {
	return s.cache.Len()
}
