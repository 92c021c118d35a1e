package repository

import (
	"context"
	"fmt"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/store"
)

// ReservationRepository stores reservation headers. Lines live in ReservationLineRepository
// and are never persisted inside the header document.
type ReservationRepository struct {
	store store.Store[domain.Reservation]
}

func NewReservationRepo(s store.Store[domain.Reservation]) *ReservationRepository {
	return &ReservationRepository{store: s}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	header := *res
	header.Lines = nil
	created, err := r.store.Create(ctx, header)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	created.Lines = res.Lines
	*res = created
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, domain.ErrReservationNotFound)
	}
	return &res, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	items, err := r.store.FindByField(ctx, "user_id", userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	return pointers(items), nil
}

func (r *ReservationRepository) ListByState(ctx context.Context, state domain.ReservationState) ([]*domain.Reservation, error) {
	items, err := r.store.FindByField(ctx, "state", state)
	if err != nil {
		return nil, fmt.Errorf("list reservations by state: %w", err)
	}
	return pointers(items), nil
}

func (r *ReservationRepository) Update(ctx context.Context, id string, mutate func(*domain.Reservation) error) (*domain.Reservation, error) {
	res, err := r.store.Update(ctx, id, func(cur *domain.Reservation) error {
		if err := mutate(cur); err != nil {
			return err
		}
		cur.Lines = nil
		return nil
	})
	if err != nil {
		return nil, translate(err, domain.ErrReservationNotFound)
	}
	return &res, nil
}
