package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"canchacontrol/internal/pkg/clock"
	"canchacontrol/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var errCopySnapshot = errs.New("failed to copy cache snapshot")

// snapshot is an in-memory copy of one authoritative list. Readers always get
// deep copies so callers can never mutate cached state, and a TTL bounds how
// stale a valid snapshot may get before the next read refetches.
type snapshot[T any] struct {
	mu        sync.RWMutex
	items     []T
	fetchedAt time.Time
	valid     bool

	fetch func(ctx context.Context) ([]T, error)
	keyOf func(T) uuid.UUID
	less  func(a, b T) bool
	ttl   time.Duration
	clk   clock.Clock
}

func newSnapshot[T any](
	fetch func(ctx context.Context) ([]T, error),
	keyOf func(T) uuid.UUID,
	less func(a, b T) bool,
	ttl time.Duration,
	clk clock.Clock,
) *snapshot[T] {
	return &snapshot[T]{
		fetch: fetch,
		keyOf: keyOf,
		less:  less,
		ttl:   ttl,
		clk:   clk,
	}
}

// Read returns a deep copy of the cached list, reconciling first when the
// snapshot is invalid or past its TTL.
func (s *snapshot[T]) Read(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	if s.isFresh() {
		items, err := deepCopy(s.items)
		s.mu.RUnlock()
		return items, err
	}
	s.mu.RUnlock()

	if err := s.Reconcile(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.items)
}

// ApplyDelta patches the cached list in place. A delta against an invalid
// snapshot is dropped; there is no base state to patch and the next read
// refetches anyway.
func (s *snapshot[T]) ApplyDelta(upserted *T, deletedID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.valid {
		return
	}

	if deletedID != uuid.Nil {
		for i, item := range s.items {
			if s.keyOf(item) == deletedID {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
	}

	if upserted != nil {
		patched, err := deepCopyOne(*upserted)
		if err != nil {
			s.valid = false
			return
		}
		replaced := false
		for i, item := range s.items {
			if s.keyOf(item) == s.keyOf(patched) {
				s.items[i] = patched
				replaced = true
				break
			}
		}
		if !replaced {
			s.items = append(s.items, patched)
		}
		sort.SliceStable(s.items, func(i, j int) bool { return s.less(s.items[i], s.items[j]) })
	}
}

// Reconcile replaces the snapshot with authoritative state.
func (s *snapshot[T]) Reconcile(ctx context.Context) error {
	fresh, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = fresh
	s.fetchedAt = s.clk.Now()
	s.valid = true
	return nil
}

func (s *snapshot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = false
	s.items = nil
}

func (s *snapshot[T]) isFresh() bool {
	return s.valid && s.clk.Now().Sub(s.fetchedAt) < s.ttl
}

func deepCopy[T any](src []T) ([]T, error) {
	out := make([]T, 0, len(src))
	if err := copier.CopyWithOption(&out, &src, copier.Option{DeepCopy: true}); err != nil {
		return nil, errs.Mark(err, errCopySnapshot)
	}
	return out, nil
}

func deepCopyOne[T any](src T) (T, error) {
	var out T
	if err := copier.CopyWithOption(&out, &src, copier.Option{DeepCopy: true}); err != nil {
		return out, errs.Mark(err, errCopySnapshot)
	}
	return out, nil
}
