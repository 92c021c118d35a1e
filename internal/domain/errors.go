package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the core wraps exactly one of these.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrRemoteUnavailable   = errors.New("remote service unavailable")
	ErrRemoteFault         = errors.New("remote service rejected the request")
	ErrValidation          = errors.New("validation error")
	ErrProviderDisabled    = errors.New("provider disabled")
	ErrIdempotencyConflict = errors.New("idempotency conflict")
)

var (
	ErrUserNotFound           = fmt.Errorf("user %w", ErrNotFound)
	ErrReservationNotFound    = fmt.Errorf("reservation %w", ErrNotFound)
	ErrLineNotFound           = fmt.Errorf("reservation line %w", ErrNotFound)
	ErrPaymentNotFound        = fmt.Errorf("payment %w", ErrNotFound)
	ErrPreReservationNotFound = fmt.Errorf("pre-reservation %w", ErrNotFound)
	ErrOfferingNotFound       = fmt.Errorf("offering %w", ErrNotFound)
	ErrProviderNotFound       = fmt.Errorf("provider %w", ErrNotFound)
)

var (
	// ErrHoldExpired is an ErrInvalidState that also moved the hold to EXPIRADO.
	ErrHoldExpired = fmt.Errorf("%w: hold expired", ErrInvalidState)

	ErrReservationNotPending = fmt.Errorf("%w: reservation is not pending", ErrInvalidState)
	ErrReservationCancelled  = fmt.Errorf("%w: reservation is cancelled", ErrInvalidState)
	ErrHoldNotBlocked        = fmt.Errorf("%w: pre-reservation is not blocked", ErrInvalidState)
)

var (
	ErrEmailTaken   = fmt.Errorf("%w: email already registered", ErrValidation)
	ErrInvalidEmail = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrUserInactive = fmt.Errorf("%w: user is inactive", ErrValidation)
)

// RemoteFaultError is a structured rejection returned by a reachable provider.
type RemoteFaultError struct {
	Provider string
	Code     string
	Message  string
}

func (e *RemoteFaultError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("provider %s rejected the request: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("provider %s rejected the request: %s (%s)", e.Provider, e.Message, e.Code)
}

func (e *RemoteFaultError) Unwrap() error { return ErrRemoteFault }

// IsPermanent reports whether retrying err can't change the outcome.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrRemoteFault) ||
		errors.Is(err, ErrProviderDisabled) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidState)
}
