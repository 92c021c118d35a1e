// Package memory is the volatile Store used by default and in tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/klimatr26/booking-hub/internal/store"
)

type Store[T store.Keyed[T]] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func New[T store.Keyed[T]]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

func (s *Store[T]) FindAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]T, 0, len(s.order))
	for _, id := range s.order {
		res = append(res, s.items[id])
	}
	return res, nil
}

func (s *Store[T]) FindByID(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return item, nil
}

func (s *Store[T]) Create(_ context.Context, entity T) (T, error) {
	if entity.Key() == "" {
		entity = entity.WithKey(uuid.New().String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.Key()
	if _, exists := s.items[id]; exists {
		var zero T
		return zero, fmt.Errorf("%w: %s", store.ErrAlreadyExists, id)
	}
	s.items[id] = entity
	s.order = append(s.order, id)
	return entity, nil
}

func (s *Store[T]) Update(_ context.Context, id string, mutate func(*T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	item, ok := s.items[id]
	if !ok {
		return zero, store.ErrNotFound
	}
	if err := mutate(&item); err != nil {
		return zero, err
	}
	item = item.WithKey(id)
	s.items[id] = item
	return item, nil
}

func (s *Store[T]) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	for i, k := range s.order {
		if k == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *Store[T]) FindByField(_ context.Context, field string, value any) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []T
	for _, id := range s.order {
		item := s.items[id]
		doc, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", id, err)
		}
		ok, err := store.FieldMatches(doc, field, value)
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", field, err)
		}
		if ok {
			res = append(res, item)
		}
	}
	return res, nil
}
