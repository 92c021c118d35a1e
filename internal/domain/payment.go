package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentState string

const (
	PaymentPending    PaymentState = "PENDIENTE"
	PaymentAuthorized PaymentState = "AUTORIZADO"
	PaymentCaptured   PaymentState = "CAPTURADO"
	PaymentRejected   PaymentState = "RECHAZADO"
	PaymentRefunded   PaymentState = "REEMBOLSADO"
)

type Payment struct {
	ID            string          `json:"id"`
	ReservationID string          `json:"reservation_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        string          `json:"method"`
	State         PaymentState    `json:"state"`
	TransactionID string          `json:"transaction_id,omitempty"`
	FailureCode   string          `json:"failure_code,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (p Payment) Key() string { return p.ID }

func (p Payment) WithKey(id string) Payment {
	p.ID = id
	return p
}

// Covers reports whether the payment counts toward a reservation total.
func (p Payment) Covers() bool {
	return p.State == PaymentAuthorized || p.State == PaymentCaptured
}

func (p *Payment) Authorize(transactionID string, now time.Time) error {
	if p.State != PaymentPending {
		return p.invalid("authorize")
	}
	p.State = PaymentAuthorized
	p.TransactionID = transactionID
	p.UpdatedAt = now
	return nil
}

func (p *Payment) Reject(code, reason string, now time.Time) error {
	if p.State != PaymentPending {
		return p.invalid("reject")
	}
	p.State = PaymentRejected
	p.FailureCode = code
	p.FailureReason = reason
	p.UpdatedAt = now
	return nil
}

func (p *Payment) Capture(now time.Time) error {
	if p.State != PaymentAuthorized {
		return p.invalid("capture")
	}
	p.State = PaymentCaptured
	p.UpdatedAt = now
	return nil
}

func (p *Payment) Refund(now time.Time) error {
	if p.State != PaymentCaptured {
		return p.invalid("refund")
	}
	p.State = PaymentRefunded
	p.UpdatedAt = now
	return nil
}

// Void releases an authorization that was never captured.
func (p *Payment) Void(reason string, now time.Time) error {
	if p.State != PaymentAuthorized {
		return p.invalid("void")
	}
	p.State = PaymentRejected
	p.FailureCode = "voided"
	p.FailureReason = reason
	p.UpdatedAt = now
	return nil
}

// Deletable is true only for payments that never moved money.
func (p Payment) Deletable() error {
	if p.State != PaymentPending && p.State != PaymentRejected {
		return p.invalid("delete")
	}
	return nil
}

func (p Payment) invalid(op string) error {
	return fmt.Errorf("%w: cannot %s payment in state %s", ErrInvalidState, op, p.State)
}

type PayInput struct {
	ReservationID string
	Amount        decimal.Decimal
	Currency      string
	Method        string
}
