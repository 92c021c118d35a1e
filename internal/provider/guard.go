package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
)

// Guard fails every call of a disabled provider without reaching the inner gateway.
type Guard struct {
	name    string
	enabled bool
	inner   Gateway
}

func NewGuard(name string, enabled bool, inner Gateway) *Guard {
	return &Guard{name: name, enabled: enabled, inner: inner}
}

func (g *Guard) check() error {
	if !g.enabled {
		return fmt.Errorf("%w: %s", domain.ErrProviderDisabled, g.name)
	}
	return nil
}

func (g *Guard) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.ServiceOffering, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	return g.inner.Search(ctx, filters)
}

func (g *Guard) GetDetail(ctx context.Context, id string) (domain.ServiceOffering, error) {
	if err := g.check(); err != nil {
		return domain.ServiceOffering{}, err
	}
	return g.inner.GetDetail(ctx, id)
}

func (g *Guard) CheckAvailability(ctx context.Context, id string, start, end time.Time, units int) (bool, error) {
	if err := g.check(); err != nil {
		return false, err
	}
	return g.inner.CheckAvailability(ctx, id, start, end, units)
}

func (g *Guard) Quote(ctx context.Context, items []domain.QuoteItem) (domain.Quotation, error) {
	if err := g.check(); err != nil {
		return domain.Quotation{}, err
	}
	return g.inner.Quote(ctx, items)
}

func (g *Guard) CreateHold(ctx context.Context, item domain.QuoteItem, holdMinutes int) (string, error) {
	if err := g.check(); err != nil {
		return "", err
	}
	return g.inner.CreateHold(ctx, item, holdMinutes)
}

func (g *Guard) Confirm(ctx context.Context, holdID, paymentMethod string) (string, error) {
	if err := g.check(); err != nil {
		return "", err
	}
	return g.inner.Confirm(ctx, holdID, paymentMethod)
}

func (g *Guard) Cancel(ctx context.Context, bookingID, reason string) (bool, error) {
	if err := g.check(); err != nil {
		return false, err
	}
	return g.inner.Cancel(ctx, bookingID, reason)
}
