package orchestrator

import (
	"context"
	"fmt"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/resilience"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

// ProviderOutcome is the result of cancelling one provider's bookings.
type ProviderOutcome struct {
	Provider  string `json:"provider"`
	Cancelled bool   `json:"cancelled"`
	Error     string `json:"error,omitempty"`
}

type CancelResult struct {
	Cancelled   bool                `json:"cancelled"`
	Reservation *domain.Reservation `json:"reservation,omitempty"`
	Providers   []ProviderOutcome   `json:"providers"`
}

// CancelReservation cancels the bookings of a PENDIENTE or CONFIRMADA reservation at every
// provider involved, all of them concurrently. The reservation is cancelled locally when at
// least one provider cancelled, or when no line was ever booked remotely. When every provider
// fails, Cancelled is false and the reservation is left as it was. A cancel that arrives while
// the reservation is being confirmed waits for the confirmation to finish.
func (o *Orchestrator) CancelReservation(ctx context.Context, id, reason string) (*CancelResult, error) {
	unlock := o.cancelLocks.Lock(id)
	defer unlock()

	res, err := o.reservations.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.State != domain.ReservationPending && res.State != domain.ReservationConfirmed {
		return nil, fmt.Errorf("%w: cannot cancel reservation in state %s", domain.ErrInvalidState, res.State)
	}

	byProvider := make(map[string][]domain.ReservationLine)
	var order []string
	for _, line := range res.Lines {
		if line.ProviderBookingID == "" {
			continue
		}
		if _, ok := byProvider[line.Provider]; !ok {
			order = append(order, line.Provider)
		}
		byProvider[line.Provider] = append(byProvider[line.Provider], line)
	}

	outcomes := make([]ProviderOutcome, len(order))
	var g errgroup.Group
	g.SetLimit(o.opts.MaxParallel)
	for i, name := range order {
		g.Go(func() error {
			outcomes[i] = o.cancelAtProvider(ctx, name, byProvider[name], reason)
			return nil
		})
	}
	_ = g.Wait()

	succeeded := len(order) == 0
	for _, out := range outcomes {
		if out.Cancelled {
			succeeded = true
			continue
		}
		o.logger.Warn("provider cancellation failed",
			logger.String("reservation_id", id),
			logger.String("provider", out.Provider),
			logger.String("error", out.Error),
		)
	}

	result := &CancelResult{Cancelled: succeeded, Providers: outcomes}
	if !succeeded {
		result.Reservation = res
		o.logger.Error("reservation not cancelled, every provider failed",
			logger.String("reservation_id", id),
			logger.Int("providers", len(order)),
		)
		return result, nil
	}

	cancelled, err := o.reservations.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}
	result.Reservation = cancelled

	o.releasePayments(ctx, id)

	o.logger.Info("reservation cancelled",
		logger.String("reservation_id", id),
		logger.String("reason", reason),
	)

	if customer, ok := o.customerOf(ctx, cancelled.UserID); ok {
		o.notify(ctx, func(ctx context.Context) {
			o.notifier.NotifyReservationCancelled(ctx, customer, cancelled)
		})
	}
	return result, nil
}

// cancelAtProvider succeeds only if every booking at the provider was cancelled.
func (o *Orchestrator) cancelAtProvider(ctx context.Context, name string, lines []domain.ReservationLine, reason string) ProviderOutcome {
	out := ProviderOutcome{Provider: name}
	p, err := o.providers.Get(name)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	for _, line := range lines {
		ok, err := resilience.Retry(ctx, o.logger, o.opts.Retry, p.Name+".cancel",
			func(ctx context.Context) (bool, error) {
				return p.Gateway.Cancel(ctx, line.ProviderBookingID, reason)
			})
		if err != nil {
			out.Error = err.Error()
			return out
		}
		if !ok {
			out.Error = fmt.Sprintf("booking %s was not cancelled", line.ProviderBookingID)
			return out
		}
	}
	out.Cancelled = true
	return out
}

// releasePayments refunds captured and voids authorized payments. Failures are logged only.
func (o *Orchestrator) releasePayments(ctx context.Context, reservationID string) {
	payments, err := o.payments.ListByReservation(ctx, reservationID)
	if err != nil {
		o.logger.Error("failed to list payments for release",
			logger.String("reservation_id", reservationID),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, p := range payments {
		switch p.State {
		case domain.PaymentCaptured:
			_, err = o.payments.Refund(ctx, p.ID)
		case domain.PaymentAuthorized:
			_, err = o.payments.Void(ctx, p.ID, "reservation cancelled")
		default:
			continue
		}
		if err != nil {
			o.logger.Error("failed to release payment",
				logger.String("payment_id", p.ID),
				logger.String("state", string(p.State)),
				logger.String("error", err.Error()),
			)
		}
	}
}
