package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/store"
)

type PreReservationRepository struct {
	store store.Store[domain.PreReservation]
}

func NewPreReservationRepo(s store.Store[domain.PreReservation]) *PreReservationRepository {
	return &PreReservationRepository{store: s}
}

func (r *PreReservationRepository) Create(ctx context.Context, p *domain.PreReservation) error {
	created, err := r.store.Create(ctx, *p)
	if err != nil {
		// the postgres store keeps idempotency keys unique with an index
		if p.IdempotencyKey != "" && errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("%w: key %q already used", domain.ErrIdempotencyConflict, p.IdempotencyKey)
		}
		return fmt.Errorf("insert pre-reservation: %w", err)
	}
	*p = created
	return nil
}

func (r *PreReservationRepository) GetByID(ctx context.Context, id string) (*domain.PreReservation, error) {
	p, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, domain.ErrPreReservationNotFound)
	}
	return &p, nil
}

func (r *PreReservationRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.PreReservation, error) {
	items, err := r.store.FindByField(ctx, "idempotency_key", key)
	if err != nil {
		return nil, fmt.Errorf("find pre-reservation by key: %w", err)
	}
	if len(items) == 0 {
		return nil, domain.ErrPreReservationNotFound
	}
	return &items[0], nil
}

func (r *PreReservationRepository) ListByState(ctx context.Context, state domain.HoldState) ([]*domain.PreReservation, error) {
	items, err := r.store.FindByField(ctx, "state", state)
	if err != nil {
		return nil, fmt.Errorf("list pre-reservations by state: %w", err)
	}
	return pointers(items), nil
}

// ListExpired returns BLOQUEADO holds whose expiry is strictly before now.
func (r *PreReservationRepository) ListExpired(ctx context.Context, now time.Time) ([]*domain.PreReservation, error) {
	blocked, err := r.ListByState(ctx, domain.HoldBlocked)
	if err != nil {
		return nil, err
	}
	res := blocked[:0]
	for _, p := range blocked {
		if p.ExpiresAt.Before(now) {
			res = append(res, p)
		}
	}
	return res, nil
}

func (r *PreReservationRepository) Update(ctx context.Context, id string, mutate func(*domain.PreReservation) error) (*domain.PreReservation, error) {
	p, err := r.store.Update(ctx, id, mutate)
	if err != nil {
		return nil, translate(err, domain.ErrPreReservationNotFound)
	}
	return &p, nil
}
