package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/resilience"
	"github.com/wb-go/wbf/logger"
)

// Confirm turns a BLOQUEADO hold into a CONFIRMADA reservation.
//
// Checks run in a fixed order: the hold must exist, be BLOQUEADO and not be past its expiry
// (an expired hold is moved to EXPIRADO and ErrHoldExpired is returned). The reservation is then
// created, its total authorized, every line confirmed at its provider and the payment captured.
// When a step after reservation creation fails, the work done so far is rolled back and the
// hold stays BLOQUEADO so the caller can retry before it expires.
func (o *Orchestrator) Confirm(ctx context.Context, holdID, paymentMethod string) (*domain.Reservation, error) {
	unlock := o.holdLocks.Lock(holdID)
	defer unlock()

	hold, err := o.holds.GetByID(ctx, holdID)
	if err != nil {
		return nil, err
	}
	if hold.State != domain.HoldBlocked {
		return nil, fmt.Errorf("%w (state %s)", domain.ErrHoldNotBlocked, hold.State)
	}

	now := o.clock.Now()
	if hold.ExpiredAt(now) {
		expired, err := o.holds.Update(ctx, holdID, func(p *domain.PreReservation) error {
			return p.Expire(now)
		})
		if err != nil {
			return nil, fmt.Errorf("expire hold: %w", err)
		}
		o.notify(ctx, func(ctx context.Context) {
			o.notifier.NotifyHoldExpired(ctx, expired.Customer, expired)
		})
		return nil, domain.ErrHoldExpired
	}

	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", domain.ErrValidation)
	}

	res, err := o.reservations.Create(ctx, domain.CreateReservationInput{
		UserID:           hold.Customer.UserID,
		PreReservationID: hold.ID,
		Currency:         hold.Currency,
		Lines:            hold.Itinerary,
	})
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	// a concurrent CancelReservation waits until every line is booked or rolled back
	unlockRes := o.cancelLocks.Lock(res.ID)
	defer unlockRes()

	var payment *domain.Payment
	if res.Total.IsPositive() {
		payment, err = o.payments.Pay(ctx, domain.PayInput{
			ReservationID: res.ID,
			Amount:        res.Total,
			Currency:      res.Currency,
			Method:        paymentMethod,
		})
		if err != nil {
			o.rollback(ctx, res, nil, nil, "payment failed")
			return nil, fmt.Errorf("authorize payment: %w", err)
		}
		if payment.State != domain.PaymentAuthorized {
			o.rollback(ctx, res, nil, nil, "payment declined")
			return nil, fmt.Errorf("%w: payment declined (%s: %s)",
				domain.ErrInsufficientPayment, payment.FailureCode, payment.FailureReason)
		}
	}

	confirmedRes, err := o.reservations.Confirm(ctx, res.ID)
	if err != nil {
		o.rollback(ctx, res, nil, payment, "reservation not confirmable")
		return nil, err
	}
	res = confirmedRes

	var booked []domain.ReservationLine
	for _, line := range res.Lines {
		bookingID, err := o.confirmLine(ctx, line, paymentMethod)
		if err != nil {
			o.rollback(ctx, res, booked, payment, "provider confirmation failed")
			return nil, fmt.Errorf("confirm %s at %s: %w", line.OfferingID, line.Provider, err)
		}
		line.ProviderBookingID = bookingID
		booked = append(booked, line)

		if err = o.reservations.RecordProviderBooking(ctx, line.ID, bookingID); err != nil {
			o.logger.Error("failed to record provider booking",
				logger.String("line_id", line.ID),
				logger.String("booking_id", bookingID),
				logger.String("error", err.Error()),
			)
		}
	}

	if payment != nil {
		if _, err = o.payments.Capture(ctx, payment.ID); err != nil {
			// the reservation stays covered by the authorization; capture can be retried
			o.logger.Error("failed to capture payment",
				logger.String("payment_id", payment.ID),
				logger.String("reservation_id", res.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	confirmedHold, err := o.holds.Update(ctx, holdID, func(p *domain.PreReservation) error {
		return p.Confirm(res.ID, now)
	})
	if err != nil {
		return nil, fmt.Errorf("mark hold confirmed: %w", err)
	}

	o.logger.Info("hold confirmed",
		logger.String("hold_id", holdID),
		logger.String("reservation_id", res.ID),
		logger.String("total", res.Total.StringFixed(2)),
	)

	confirmed, err := o.reservations.Get(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	o.notify(ctx, func(ctx context.Context) {
		o.notifier.NotifyReservationConfirmed(ctx, confirmedHold.Customer, confirmed)
	})
	return confirmed, nil
}

func (o *Orchestrator) confirmLine(ctx context.Context, line domain.ReservationLine, paymentMethod string) (string, error) {
	p, err := o.providers.Get(line.Provider)
	if err != nil {
		return "", err
	}
	return resilience.Retry(ctx, o.logger, o.opts.Retry, p.Name+".confirm",
		func(ctx context.Context) (string, error) {
			return p.Gateway.Confirm(ctx, line.ProviderHoldID, paymentMethod)
		})
}

// rollback undoes a partially confirmed reservation. Every step is best-effort.
func (o *Orchestrator) rollback(ctx context.Context, res *domain.Reservation, booked []domain.ReservationLine, payment *domain.Payment, reason string) {
	for _, line := range booked {
		p, err := o.providers.Get(line.Provider)
		if err == nil {
			_, err = resilience.Retry(ctx, o.logger, o.opts.Retry, p.Name+".cancel",
				func(ctx context.Context) (bool, error) {
					return p.Gateway.Cancel(ctx, line.ProviderBookingID, reason)
				})
		}
		if err != nil {
			o.logger.Error("failed to cancel provider booking during rollback",
				logger.String("provider", line.Provider),
				logger.String("booking_id", line.ProviderBookingID),
				logger.String("error", err.Error()),
			)
		}
	}

	if payment != nil {
		if _, err := o.payments.Void(ctx, payment.ID, reason); err != nil {
			o.logger.Error("failed to void payment during rollback",
				logger.String("payment_id", payment.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	if _, err := o.reservations.Cancel(ctx, res.ID); err != nil {
		o.logger.Error("failed to cancel reservation during rollback",
			logger.String("reservation_id", res.ID),
			logger.String("error", err.Error()),
		)
	}

	o.logger.Warn("confirmation rolled back",
		logger.String("reservation_id", res.ID),
		logger.String("reason", reason),
	)
}
