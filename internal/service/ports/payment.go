package ports

import (
	"context"

	"github.com/klimatr26/booking-hub/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID string) ([]*domain.Payment, error)
	GetByTransactionID(ctx context.Context, txnID string) (*domain.Payment, error)
	Update(ctx context.Context, id string, mutate func(*domain.Payment) error) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
}
