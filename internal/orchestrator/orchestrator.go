// Package orchestrator coordinates providers, holds, reservations and payments.
package orchestrator

import (
	"context"

	"github.com/klimatr26/booking-hub/internal/clock"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/provider"
	"github.com/klimatr26/booking-hub/internal/resilience"
	"github.com/klimatr26/booking-hub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type reservationService interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	Confirm(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	RecordProviderBooking(ctx context.Context, lineID, bookingID string) error
}

type paymentService interface {
	Pay(ctx context.Context, input domain.PayInput) (*domain.Payment, error)
	Capture(ctx context.Context, id string) (*domain.Payment, error)
	Refund(ctx context.Context, id string) (*domain.Payment, error)
	Void(ctx context.Context, id, reason string) (*domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID string) ([]*domain.Payment, error)
}

type Options struct {
	Retry              resilience.Policy
	MaxParallel        int
	DefaultHoldMinutes int
}

func (o Options) withDefaults() Options {
	if o.Retry.Attempts <= 0 {
		o.Retry = resilience.DefaultPolicy
	}
	if o.MaxParallel <= 0 {
		o.MaxParallel = 8
	}
	if o.DefaultHoldMinutes <= 0 {
		o.DefaultHoldMinutes = domain.DefaultHoldMinutes
	}
	return o
}

type Orchestrator struct {
	providers    *provider.Registry
	cache        ports.ServiceCache
	holds        ports.PreReservationRepo
	users        ports.UserRepo
	reservations reservationService
	payments     paymentService
	notifier     ports.BookingNotifier
	clock        clock.Clock
	logger       logger.Logger
	opts         Options

	holdLocks        *keyLock
	idempotencyLocks *keyLock
	cancelLocks      *keyLock
}

func New(
	providers *provider.Registry,
	cache ports.ServiceCache,
	holds ports.PreReservationRepo,
	users ports.UserRepo,
	reservations reservationService,
	payments paymentService,
	notifier ports.BookingNotifier,
	clk clock.Clock,
	logger logger.Logger,
	opts Options,
) *Orchestrator {
	return &Orchestrator{
		providers:        providers,
		cache:            cache,
		holds:            holds,
		users:            users,
		reservations:     reservations,
		payments:         payments,
		notifier:         notifier,
		clock:            clk,
		logger:           logger,
		opts:             opts.withDefaults(),
		holdLocks:        newKeyLock(),
		idempotencyLocks: newKeyLock(),
		cancelLocks:      newKeyLock(),
	}
}

// notify runs fn in the background, detached from the caller's cancellation.
func (o *Orchestrator) notify(ctx context.Context, fn func(ctx context.Context)) {
	if o.notifier == nil {
		return
	}
	go fn(context.WithoutCancel(ctx))
}

func (o *Orchestrator) customerOf(ctx context.Context, userID string) (domain.Customer, bool) {
	u, err := o.users.GetByID(ctx, userID)
	if err != nil {
		o.logger.Error("failed to get user for notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return domain.Customer{}, false
	}
	return u.Customer(), true
}
