// Package provider defines the contract every remote booking backend is adapted to.
package provider

import (
	"context"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
)

// Gateway translates the core's calls into one provider's wire protocol.
//
// A reachable provider that rejects a request returns *domain.RemoteFaultError;
// transport failures wrap domain.ErrRemoteUnavailable.
// Cancel also releases an unconfirmed hold when given a hold id.
type Gateway interface {
	Search(ctx context.Context, filters domain.SearchFilters) ([]domain.ServiceOffering, error)
	GetDetail(ctx context.Context, id string) (domain.ServiceOffering, error)
	CheckAvailability(ctx context.Context, id string, start, end time.Time, units int) (bool, error)
	Quote(ctx context.Context, items []domain.QuoteItem) (domain.Quotation, error)
	CreateHold(ctx context.Context, item domain.QuoteItem, holdMinutes int) (string, error)
	Confirm(ctx context.Context, holdID, paymentMethod string) (string, error)
	Cancel(ctx context.Context, bookingID, reason string) (bool, error)
}
