package ports

import (
	"context"

	"github.com/klimatr26/booking-hub/internal/domain"
)

type BookingNotifier interface {
	NotifyHoldCreated(ctx context.Context, customer domain.Customer, hold *domain.PreReservation)
	NotifyHoldExpired(ctx context.Context, customer domain.Customer, hold *domain.PreReservation)
	NotifyReservationConfirmed(ctx context.Context, customer domain.Customer, res *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, customer domain.Customer, res *domain.Reservation)
}
