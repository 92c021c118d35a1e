package repository

import (
	"context"
	"fmt"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/store"
)

type ReservationLineRepository struct {
	store store.Store[domain.ReservationLine]
}

func NewReservationLineRepo(s store.Store[domain.ReservationLine]) *ReservationLineRepository {
	return &ReservationLineRepository{store: s}
}

func (r *ReservationLineRepository) Create(ctx context.Context, line *domain.ReservationLine) error {
	created, err := r.store.Create(ctx, *line)
	if err != nil {
		return fmt.Errorf("insert reservation line: %w", err)
	}
	*line = created
	return nil
}

func (r *ReservationLineRepository) GetByID(ctx context.Context, id string) (*domain.ReservationLine, error) {
	l, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, domain.ErrLineNotFound)
	}
	return &l, nil
}

// ListByReservation returns lines in insertion order.
func (r *ReservationLineRepository) ListByReservation(ctx context.Context, reservationID string) ([]domain.ReservationLine, error) {
	lines, err := r.store.FindByField(ctx, "reservation_id", reservationID)
	if err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}
	return lines, nil
}

func (r *ReservationLineRepository) Update(ctx context.Context, id string, mutate func(*domain.ReservationLine) error) (*domain.ReservationLine, error) {
	l, err := r.store.Update(ctx, id, mutate)
	if err != nil {
		return nil, translate(err, domain.ErrLineNotFound)
	}
	return &l, nil
}

func (r *ReservationLineRepository) Delete(ctx context.Context, id string) error {
	ok, err := r.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete reservation line: %w", err)
	}
	if !ok {
		return domain.ErrLineNotFound
	}
	return nil
}
