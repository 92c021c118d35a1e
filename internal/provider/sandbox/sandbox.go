// Package sandbox is an in-process provider with a fixed catalog, used for local runs and tests.
package sandbox

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/shopspring/decimal"
)

// Item is one catalog entry with a finite number of units.
type Item struct {
	Offering domain.ServiceOffering
	Capacity int
}

type hold struct {
	offeringID string
	units      int
	expiresAt  time.Time
}

type Gateway struct {
	name     string
	currency string
	now      func() time.Time

	mu       sync.Mutex
	catalog  map[string]*Item
	order    []string
	holds    map[string]hold
	bookings map[string]hold
}

func New(name, currency string, items []Item) *Gateway {
	g := &Gateway{
		name:     name,
		currency: currency,
		now:      func() time.Time { return time.Now().UTC() },
		catalog:  make(map[string]*Item, len(items)),
		holds:    make(map[string]hold),
		bookings: make(map[string]hold),
	}
	for i := range items {
		it := items[i]
		it.Offering.Provider = name
		if it.Offering.Currency == "" {
			it.Offering.Currency = currency
		}
		g.catalog[it.Offering.ID] = &it
		g.order = append(g.order, it.Offering.ID)
	}
	return g
}

// WithClock replaces the time source used for hold expiry.
func (g *Gateway) WithClock(now func() time.Time) *Gateway {
	g.now = now
	return g
}

// Catalog builds a deterministic catalog of n offerings of one type for a provider.
func Catalog(provider string, typ domain.ServiceType, cities []string, n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		city := ""
		if len(cities) > 0 {
			city = cities[i%len(cities)]
		}
		items = append(items, Item{
			Offering: domain.ServiceOffering{
				ID:        fmt.Sprintf("%s-%s-%d", provider, typ, i+1),
				Type:      typ,
				Name:      fmt.Sprintf("%s %s #%d", strings.ToUpper(string(typ[:1]))+string(typ[1:]), city, i+1),
				City:      city,
				UnitPrice: decimal.NewFromInt(int64(40 + 15*i)),
				Rating:    float64(3 + i%3),
				Available: true,
			},
			Capacity: 10,
		})
	}
	return items
}

func (g *Gateway) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.ServiceOffering, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	var res []domain.ServiceOffering
	for _, id := range g.order {
		it := g.catalog[id]
		o := it.Offering
		if filters.City != "" && !strings.EqualFold(filters.City, o.City) {
			continue
		}
		if filters.MaxPrice.IsPositive() && o.UnitPrice.GreaterThan(filters.MaxPrice) {
			continue
		}
		if filters.MinRating > 0 && o.Rating < filters.MinRating {
			continue
		}
		units := filters.Units
		if units <= 0 {
			units = 1
		}
		o.Available = o.Available && g.freeLocked(id, now) >= units
		o.FetchedAt = now
		res = append(res, o)
	}
	return res, nil
}

func (g *Gateway) GetDetail(ctx context.Context, id string) (domain.ServiceOffering, error) {
	if err := ctx.Err(); err != nil {
		return domain.ServiceOffering{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	it, ok := g.catalog[id]
	if !ok {
		return domain.ServiceOffering{}, g.fault("not_found", "unknown offering "+id)
	}
	o := it.Offering
	o.FetchedAt = g.now()
	return o, nil
}

func (g *Gateway) CheckAvailability(ctx context.Context, id string, start, end time.Time, units int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !end.After(start) {
		return false, g.fault("bad_range", "end must be after start")
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	it, ok := g.catalog[id]
	if !ok {
		return false, g.fault("not_found", "unknown offering "+id)
	}
	return it.Offering.Available && g.freeLocked(id, g.now()) >= units, nil
}

func (g *Gateway) Quote(ctx context.Context, items []domain.QuoteItem) (domain.Quotation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Quotation{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	q := domain.Quotation{
		Provider:   g.name,
		Total:      decimal.Zero,
		Currency:   g.currency,
		ValidUntil: g.now().Add(15 * time.Minute),
	}
	for _, item := range items {
		it, ok := g.catalog[item.OfferingID]
		if !ok {
			return domain.Quotation{}, g.fault("not_found", "unknown offering "+item.OfferingID)
		}
		if item.Quantity <= 0 {
			return domain.Quotation{}, g.fault("bad_quantity", "quantity must be positive")
		}
		subtotal := it.Offering.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		q.Lines = append(q.Lines, domain.QuotedLine{
			OfferingID:  item.OfferingID,
			ServiceType: it.Offering.Type,
			Quantity:    item.Quantity,
			UnitPrice:   it.Offering.UnitPrice,
			Subtotal:    subtotal,
		})
		q.Total = q.Total.Add(subtotal)
	}
	return q, nil
}

func (g *Gateway) CreateHold(ctx context.Context, item domain.QuoteItem, holdMinutes int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	it, ok := g.catalog[item.OfferingID]
	if !ok {
		return "", g.fault("not_found", "unknown offering "+item.OfferingID)
	}
	now := g.now()
	if !it.Offering.Available || g.freeLocked(item.OfferingID, now) < item.Quantity {
		return "", g.fault("sold_out", "not enough units for "+item.OfferingID)
	}

	// Provider-side holds outlive the hub's by a minute so confirmation never races them.
	id := "HOLD-" + uuid.NewString()
	g.holds[id] = hold{
		offeringID: item.OfferingID,
		units:      item.Quantity,
		expiresAt:  now.Add(time.Duration(holdMinutes+1) * time.Minute),
	}
	return id, nil
}

func (g *Gateway) Confirm(ctx context.Context, holdID, paymentMethod string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	h, ok := g.holds[holdID]
	if !ok {
		return "", g.fault("hold_not_found", "unknown hold "+holdID)
	}
	if g.now().After(h.expiresAt) {
		delete(g.holds, holdID)
		return "", g.fault("hold_expired", "hold "+holdID+" expired")
	}
	delete(g.holds, holdID)

	id := "BKG-" + uuid.NewString()
	g.bookings[id] = h
	return id, nil
}

func (g *Gateway) Cancel(ctx context.Context, bookingID, reason string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.holds[bookingID]; ok {
		delete(g.holds, bookingID)
		return true, nil
	}
	if _, ok := g.bookings[bookingID]; !ok {
		return false, g.fault("booking_not_found", "unknown booking "+bookingID)
	}
	delete(g.bookings, bookingID)
	return true, nil
}

// freeLocked returns the units not taken by live holds or bookings. g.mu must be held.
func (g *Gateway) freeLocked(offeringID string, now time.Time) int {
	it := g.catalog[offeringID]
	taken := 0
	for id, h := range g.holds {
		if now.After(h.expiresAt) {
			delete(g.holds, id)
			continue
		}
		if h.offeringID == offeringID {
			taken += h.units
		}
	}
	for _, b := range g.bookings {
		if b.offeringID == offeringID {
			taken += b.units
		}
	}
	return it.Capacity - taken
}

func (g *Gateway) fault(code, msg string) error {
	return &domain.RemoteFaultError{Provider: g.name, Code: code, Message: msg}
}
