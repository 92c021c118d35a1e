package repository

import (
	"errors"

	"github.com/klimatr26/booking-hub/internal/store"
)

// translate maps store-level misses to the entity's domain error.
func translate(err, notFound error) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}
	return err
}

func pointers[T any](items []T) []*T {
	res := make([]*T, 0, len(items))
	for i := range items {
		res = append(res, &items[i])
	}
	return res
}
