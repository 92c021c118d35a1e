package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klimatr26/booking-hub/internal/clock"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/paygate"
	"github.com/klimatr26/booking-hub/internal/resilience"
	"github.com/klimatr26/booking-hub/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	repo         ports.PaymentRepo
	reservations ports.ReservationRepo
	processor    paygate.Processor
	policy       resilience.Policy
	clock        clock.Clock
	logger       logger.Logger
}

func NewPaymentService(
	repo ports.PaymentRepo,
	reservations ports.ReservationRepo,
	processor paygate.Processor,
	policy resilience.Policy,
	clk clock.Clock,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		repo:         repo,
		reservations: reservations,
		processor:    processor,
		policy:       policy,
		clock:        clk,
		logger:       logger,
	}
}

// Pay records a PENDIENTE payment and asks the processor to authorize it.
// A decline is not an error: the returned payment is RECHAZADO with the decline reason.
// When the processor can't be reached the payment stays PENDIENTE and the error is returned.
func (s *PaymentService) Pay(ctx context.Context, input domain.PayInput) (*domain.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	method := strings.TrimSpace(input.Method)
	if method == "" {
		return nil, fmt.Errorf("%w: payment method is required", domain.ErrValidation)
	}

	res, err := s.reservations.GetByID(ctx, input.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("check reservation: %w", err)
	}
	if res.State == domain.ReservationCancelled {
		return nil, domain.ErrReservationCancelled
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = res.Currency
	}
	if currency != res.Currency {
		return nil, fmt.Errorf("%w: payment currency %s differs from reservation currency %s",
			domain.ErrValidation, currency, res.Currency)
	}

	now := s.clock.Now()
	p := &domain.Payment{
		ID:            uuid.New().String(),
		ReservationID: res.ID,
		Amount:        input.Amount,
		Currency:      currency,
		Method:        method,
		State:         domain.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	auth, err := resilience.Retry(ctx, s.logger, s.policy, "paygate.authorize",
		func(ctx context.Context) (paygate.Authorization, error) {
			return s.processor.Authorize(ctx, paygate.AuthorizeRequest{
				Reference: p.ID,
				Amount:    p.Amount,
				Currency:  p.Currency,
				Method:    p.Method,
			})
		})
	if err != nil {
		return p, fmt.Errorf("authorize payment: %w", err)
	}

	updated, err := s.repo.Update(ctx, p.ID, func(cur *domain.Payment) error {
		if auth.Approved {
			return cur.Authorize(auth.TransactionID, s.clock.Now())
		}
		return cur.Reject(auth.DeclineCode, auth.DeclineReason, s.clock.Now())
	})
	if err != nil {
		return nil, fmt.Errorf("record authorization: %w", err)
	}

	s.logger.Info("payment processed",
		logger.String("payment_id", updated.ID),
		logger.String("reservation_id", updated.ReservationID),
		logger.String("state", string(updated.State)),
		logger.String("amount", updated.Amount.StringFixed(2)),
	)
	return updated, nil
}

// Capture settles an AUTORIZADO payment.
func (s *PaymentService) Capture(ctx context.Context, id string) (*domain.Payment, error) {
	return s.settle(ctx, id, "capture",
		func(p *domain.Payment, now time.Time) error { return p.Capture(now) },
		func(ctx context.Context, p *domain.Payment) error {
			return s.processor.Capture(ctx, p.TransactionID, p.Amount)
		})
}

// Refund returns a CAPTURADO payment.
func (s *PaymentService) Refund(ctx context.Context, id string) (*domain.Payment, error) {
	return s.settle(ctx, id, "refund",
		func(p *domain.Payment, now time.Time) error { return p.Refund(now) },
		func(ctx context.Context, p *domain.Payment) error {
			return s.processor.Refund(ctx, p.TransactionID, p.Amount)
		})
}

// Void releases an uncaptured authorization.
func (s *PaymentService) Void(ctx context.Context, id, reason string) (*domain.Payment, error) {
	return s.settle(ctx, id, "void",
		func(p *domain.Payment, now time.Time) error { return p.Void(reason, now) },
		func(ctx context.Context, p *domain.Payment) error {
			return s.processor.Void(ctx, p.TransactionID)
		})
}

// settle checks the local transition, runs the remote call and then applies the transition.
func (s *PaymentService) settle(
	ctx context.Context,
	id, op string,
	transition func(p *domain.Payment, now time.Time) error,
	remote func(ctx context.Context, p *domain.Payment) error,
) (*domain.Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := *p
	if err = transition(&draft, s.clock.Now()); err != nil {
		return nil, err
	}

	err = resilience.Do(ctx, s.logger, s.policy, "paygate."+op, func(ctx context.Context) error {
		return remote(ctx, p)
	})
	if err != nil {
		return nil, fmt.Errorf("%s payment: %w", op, err)
	}

	updated, err := s.repo.Update(ctx, id, func(cur *domain.Payment) error {
		return transition(cur, s.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment "+op,
		logger.String("payment_id", id),
		logger.String("state", string(updated.State)),
	)
	return updated, nil
}

// Delete removes a payment that never moved money.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = p.Deletable(); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PaymentService) ListByReservation(ctx context.Context, reservationID string) ([]*domain.Payment, error) {
	if _, err := s.reservations.GetByID(ctx, reservationID); err != nil {
		return nil, err
	}
	return s.repo.ListByReservation(ctx, reservationID)
}

func (s *PaymentService) GetByTransactionID(ctx context.Context, txnID string) (*domain.Payment, error) {
	return s.repo.GetByTransactionID(ctx, txnID)
}

// CoveredAmount sums the AUTORIZADO and CAPTURADO payments of a reservation.
func (s *PaymentService) CoveredAmount(ctx context.Context, reservationID string) (decimal.Decimal, error) {
	payments, err := s.repo.ListByReservation(ctx, reservationID)
	if err != nil {
		return decimal.Zero, err
	}
	covered := decimal.Zero
	for _, p := range payments {
		if p.Covers() {
			covered = covered.Add(p.Amount)
		}
	}
	return covered, nil
}
