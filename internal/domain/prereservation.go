package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type HoldState string

const (
	HoldBlocked   HoldState = "BLOQUEADO"
	HoldExpired   HoldState = "EXPIRADO"
	HoldConfirmed HoldState = "CONFIRMADO"
)

const DefaultHoldMinutes = 30

// PreReservation is a time-bounded hold over an itinerary.
type PreReservation struct {
	ID             string            `json:"id"`
	Itinerary      []ReservationLine `json:"itinerary"`
	Customer       Customer          `json:"customer"`
	HoldMinutes    int               `json:"hold_minutes"`
	Total          decimal.Decimal   `json:"total"`
	Currency       string            `json:"currency"`
	IdempotencyKey string            `json:"idempotency_key,omitempty"`
	State          HoldState         `json:"state"`
	ReservationID  string            `json:"reservation_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	ExpiresAt      time.Time         `json:"expires_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (p PreReservation) Key() string { return p.ID }

func (p PreReservation) WithKey(id string) PreReservation {
	p.ID = id
	return p
}

// NewPreReservation builds a BLOQUEADO hold expiring holdMinutes after now.
func NewPreReservation(customer Customer, itinerary []ReservationLine, currency string, holdMinutes int, key string, now time.Time) PreReservation {
	total := decimal.Zero
	for _, l := range itinerary {
		total = total.Add(l.Subtotal)
	}
	return PreReservation{
		Itinerary:      itinerary,
		Customer:       customer,
		HoldMinutes:    holdMinutes,
		Total:          total,
		Currency:       currency,
		IdempotencyKey: key,
		State:          HoldBlocked,
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Duration(holdMinutes) * time.Minute),
		UpdatedAt:      now,
	}
}

// ExpiredAt reports whether the hold is past its expiry at now.
func (p PreReservation) ExpiredAt(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

func (p *PreReservation) Expire(now time.Time) error {
	if p.State != HoldBlocked {
		return fmt.Errorf("%w (state %s)", ErrHoldNotBlocked, p.State)
	}
	p.State = HoldExpired
	p.UpdatedAt = now
	return nil
}

// Confirm succeeds only while now <= expiry; past expiry the hold is expired instead.
func (p *PreReservation) Confirm(reservationID string, now time.Time) error {
	if p.State != HoldBlocked {
		return fmt.Errorf("%w (state %s)", ErrHoldNotBlocked, p.State)
	}
	if p.ExpiredAt(now) {
		p.State = HoldExpired
		p.UpdatedAt = now
		return ErrHoldExpired
	}
	p.State = HoldConfirmed
	p.ReservationID = reservationID
	p.UpdatedAt = now
	return nil
}

type HoldItem struct {
	Provider   string      `json:"provider"`
	OfferingID string      `json:"offering_id"`
	Quantity   int         `json:"quantity"`
	StartDate  *time.Time  `json:"start_date,omitempty"`
	EndDate    *time.Time  `json:"end_date,omitempty"`
	Legs       int         `json:"legs,omitempty"`
	Type       ServiceType `json:"type,omitempty"`
}

type HoldRequest struct {
	UserID         string
	Items          []HoldItem
	HoldMinutes    *int
	IdempotencyKey string
}
