package ports

import (
	"context"

	"github.com/klimatr26/booking-hub/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	ListByState(ctx context.Context, state domain.ReservationState) ([]*domain.Reservation, error)
	Update(ctx context.Context, id string, mutate func(*domain.Reservation) error) (*domain.Reservation, error)
}

type ReservationLineRepo interface {
	Create(ctx context.Context, line *domain.ReservationLine) error
	GetByID(ctx context.Context, id string) (*domain.ReservationLine, error)
	ListByReservation(ctx context.Context, reservationID string) ([]domain.ReservationLine, error)
	Update(ctx context.Context, id string, mutate func(*domain.ReservationLine) error) (*domain.ReservationLine, error)
	Delete(ctx context.Context, id string) error
}
