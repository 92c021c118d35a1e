package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ReservationState string

const (
	ReservationPending   ReservationState = "PENDIENTE"
	ReservationConfirmed ReservationState = "CONFIRMADA"
	ReservationCancelled ReservationState = "CANCELADA"
	ReservationCompleted ReservationState = "COMPLETADA"
)

type Reservation struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	PreReservationID string            `json:"pre_reservation_id,omitempty"`
	Total            decimal.Decimal   `json:"total"`
	Currency         string            `json:"currency"`
	State            ReservationState  `json:"state"`
	Notes            string            `json:"notes,omitempty"`
	Lines            []ReservationLine `json:"lines,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (r Reservation) Key() string { return r.ID }

func (r Reservation) WithKey(id string) Reservation {
	r.ID = id
	return r
}

// Editable reports whether lines and details may still change.
func (r Reservation) Editable() error {
	if r.State != ReservationPending {
		return fmt.Errorf("%w (state %s)", ErrReservationNotPending, r.State)
	}
	return nil
}

// Confirm moves PENDIENTE to CONFIRMADA when covered >= total.
func (r *Reservation) Confirm(covered decimal.Decimal, now time.Time) error {
	if r.State != ReservationPending {
		return fmt.Errorf("%w: cannot confirm reservation in state %s", ErrInvalidState, r.State)
	}
	if covered.LessThan(r.Total) {
		return fmt.Errorf("%w: covered %s of %s %s", ErrInsufficientPayment, covered.StringFixed(2), r.Total.StringFixed(2), r.Currency)
	}
	r.State = ReservationConfirmed
	r.UpdatedAt = now
	return nil
}

// Cancel is allowed from PENDIENTE and CONFIRMADA only.
func (r *Reservation) Cancel(now time.Time) error {
	switch r.State {
	case ReservationPending, ReservationConfirmed:
		r.State = ReservationCancelled
		r.UpdatedAt = now
		return nil
	default:
		return fmt.Errorf("%w: cannot cancel reservation in state %s", ErrInvalidState, r.State)
	}
}

// Recompute sets Total to the sum of the line subtotals.
func (r *Reservation) Recompute(lines []ReservationLine) {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	r.Total = total
}

// ReservationLine is one priced component of a reservation or hold itinerary.
type ReservationLine struct {
	ID                string          `json:"id"`
	ReservationID     string          `json:"reservation_id,omitempty"`
	ServiceType       ServiceType     `json:"service_type"`
	OfferingID        string          `json:"offering_id"`
	Provider          string          `json:"provider"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	StartDate         *time.Time      `json:"start_date,omitempty"`
	EndDate           *time.Time      `json:"end_date,omitempty"`
	Legs              int             `json:"legs,omitempty"`
	ProviderHoldID    string          `json:"provider_hold_id,omitempty"`
	ProviderBookingID string          `json:"provider_booking_id,omitempty"`
}

func (l ReservationLine) Key() string { return l.ID }

func (l ReservationLine) WithKey(id string) ReservationLine {
	l.ID = id
	return l
}

// Price sets quantity and unit price and recomputes the subtotal.
func (l *ReservationLine) Price(quantity int, unitPrice decimal.Decimal) {
	l.Quantity = quantity
	l.UnitPrice = unitPrice
	l.Subtotal = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Validate checks the service-specific fields.
func (l ReservationLine) Validate() error {
	if !l.ServiceType.Valid() {
		return fmt.Errorf("%w: unknown service type %q", ErrValidation, l.ServiceType)
	}
	if l.OfferingID == "" {
		return fmt.Errorf("%w: offering_id is required", ErrValidation)
	}
	if l.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if l.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price must not be negative", ErrValidation)
	}
	switch l.ServiceType {
	case ServiceHotel, ServiceCar:
		if l.StartDate == nil || l.EndDate == nil {
			return fmt.Errorf("%w: %s lines need a date range", ErrValidation, l.ServiceType)
		}
		if !l.EndDate.After(*l.StartDate) {
			return fmt.Errorf("%w: end_date must be after start_date", ErrValidation)
		}
	case ServiceFlight:
		if l.Legs <= 0 {
			return fmt.Errorf("%w: flight lines need at least one leg", ErrValidation)
		}
	}
	return nil
}

type CreateReservationInput struct {
	UserID           string
	PreReservationID string
	Currency         string
	Notes            string
	Lines            []ReservationLine
}

// LineChange updates quantity and/or unit price of an existing line.
type LineChange struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
}
