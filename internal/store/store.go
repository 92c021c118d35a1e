// Package store defines the keyed collection every repository is built on.
//
// Implementations give no cross-key atomicity: each call is a single operation on one
// key (or a read of the whole collection). Callers that need a read-then-write sequence
// to be atomic must serialize it themselves or express it as an Update mutation.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Keyed is implemented by value types stored in a Store.
type Keyed[T any] interface {
	Key() string
	WithKey(id string) T
}

// Store is a collection of T keyed by an identifier field.
type Store[T Keyed[T]] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (T, error)
	// Create assigns an id when entity has none. Ids carry no ordering meaning.
	Create(ctx context.Context, entity T) (T, error)
	// Update applies mutate to the current value; the stored id always wins.
	Update(ctx context.Context, id string, mutate func(*T) error) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
	// FindByField returns entities whose JSON field equals value. Linear scan.
	FindByField(ctx context.Context, field string, value any) ([]T, error)
}

// FieldMatches compares one JSON field of a document to value by JSON equality.
func FieldMatches(doc json.RawMessage, field string, value any) (bool, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return false, err
	}
	raw, ok := fields[field]
	if !ok {
		return value == nil, nil
	}
	want, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	return jsonEqual(raw, want)
}

func jsonEqual(a, b []byte) (bool, error) {
	if bytes.Equal(a, b) {
		return true, nil
	}
	var av, bv any
	if err := json.Unmarshal(a, &av); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, &bv); err != nil {
		return false, err
	}
	ab, _ := json.Marshal(av)
	bb, _ := json.Marshal(bv)
	return bytes.Equal(ab, bb), nil
}
