package repository

import (
	"context"
	"fmt"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/store"
)

type PaymentRepository struct {
	store store.Store[domain.Payment]
}

func NewPaymentRepo(s store.Store[domain.Payment]) *PaymentRepository {
	return &PaymentRepository{store: s}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	created, err := r.store.Create(ctx, *p)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	*p = created
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	p, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, domain.ErrPaymentNotFound)
	}
	return &p, nil
}

func (r *PaymentRepository) ListByReservation(ctx context.Context, reservationID string) ([]*domain.Payment, error) {
	items, err := r.store.FindByField(ctx, "reservation_id", reservationID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return pointers(items), nil
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, txnID string) (*domain.Payment, error) {
	items, err := r.store.FindByField(ctx, "transaction_id", txnID)
	if err != nil {
		return nil, fmt.Errorf("find payment by transaction: %w", err)
	}
	if len(items) == 0 {
		return nil, domain.ErrPaymentNotFound
	}
	return &items[0], nil
}

func (r *PaymentRepository) Update(ctx context.Context, id string, mutate func(*domain.Payment) error) (*domain.Payment, error) {
	p, err := r.store.Update(ctx, id, mutate)
	if err != nil {
		return nil, translate(err, domain.ErrPaymentNotFound)
	}
	return &p, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	ok, err := r.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if !ok {
		return domain.ErrPaymentNotFound
	}
	return nil
}
