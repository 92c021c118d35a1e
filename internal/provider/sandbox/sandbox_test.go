package sandbox

import (
	"context"
	"testing"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway() *Gateway {
	return New("hotels-sbx", "USD", []Item{
		{Offering: domain.ServiceOffering{ID: "h1", Type: domain.ServiceHotel, City: "Quito", UnitPrice: decimal.NewFromInt(50), Rating: 4, Available: true}, Capacity: 2},
		{Offering: domain.ServiceOffering{ID: "h2", Type: domain.ServiceHotel, City: "Cuenca", UnitPrice: decimal.NewFromInt(120), Rating: 5, Available: true}, Capacity: 1},
	})
}

func TestGateway_SearchFilters(t *testing.T) {
	g := newGateway()
	ctx := context.Background()

	res, err := g.Search(ctx, domain.SearchFilters{City: "quito"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "h1", res[0].ID)
	assert.Equal(t, "hotels-sbx", res[0].Provider)
	assert.Equal(t, "USD", res[0].Currency)

	res, err = g.Search(ctx, domain.SearchFilters{MaxPrice: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.Len(t, res, 1)

	res, err = g.Search(ctx, domain.SearchFilters{MinRating: 4.5})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "h2", res[0].ID)
}

func TestGateway_UnknownOfferingIsFault(t *testing.T) {
	g := newGateway()

	_, err := g.GetDetail(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrRemoteFault)
}

func TestGateway_Quote(t *testing.T) {
	g := newGateway()

	q, err := g.Quote(context.Background(), []domain.QuoteItem{
		{OfferingID: "h1", Quantity: 2},
		{OfferingID: "h2", Quantity: 1},
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(220).Equal(q.Total))
	require.Len(t, q.Lines, 2)
	assert.True(t, decimal.NewFromInt(100).Equal(q.Lines[0].Subtotal))
	assert.Equal(t, domain.ServiceHotel, q.Lines[0].ServiceType)
}

func TestGateway_HoldsConsumeCapacity(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	_, err := g.CreateHold(ctx, domain.QuoteItem{OfferingID: "h2", Quantity: 1}, 30)
	require.NoError(t, err)

	ok, err := g.CheckAvailability(ctx, "h2", start, end, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = g.CreateHold(ctx, domain.QuoteItem{OfferingID: "h2", Quantity: 1}, 30)
	assert.ErrorIs(t, err, domain.ErrRemoteFault)
}

func TestGateway_HoldExpiryReleasesCapacity(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := newGateway().WithClock(func() time.Time { return now })
	ctx := context.Background()

	holdID, err := g.CreateHold(ctx, domain.QuoteItem{OfferingID: "h2", Quantity: 1}, 0)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	_, err = g.Confirm(ctx, holdID, "card")
	assert.ErrorIs(t, err, domain.ErrRemoteFault)

	ok, err := g.CheckAvailability(ctx, "h2", now, now.Add(time.Hour), 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGateway_CancelReleasesHold(t *testing.T) {
	g := newGateway()
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	holdID, err := g.CreateHold(ctx, domain.QuoteItem{OfferingID: "h2", Quantity: 1}, 30)
	require.NoError(t, err)

	ok, err := g.Cancel(ctx, holdID, "released")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.CheckAvailability(ctx, "h2", start, start.Add(time.Hour), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = g.Confirm(ctx, holdID, "card")
	assert.ErrorIs(t, err, domain.ErrRemoteFault)
}

func TestGateway_ConfirmAndCancel(t *testing.T) {
	g := newGateway()
	ctx := context.Background()

	holdID, err := g.CreateHold(ctx, domain.QuoteItem{OfferingID: "h1", Quantity: 1}, 30)
	require.NoError(t, err)

	bookingID, err := g.Confirm(ctx, holdID, "card")
	require.NoError(t, err)
	assert.NotEmpty(t, bookingID)

	_, err = g.Confirm(ctx, holdID, "card")
	assert.ErrorIs(t, err, domain.ErrRemoteFault)

	ok, err := g.Cancel(ctx, bookingID, "test")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = g.Cancel(ctx, bookingID, "test")
	assert.ErrorIs(t, err, domain.ErrRemoteFault)
}

func TestCatalog_Deterministic(t *testing.T) {
	a := Catalog("cars-sbx", domain.ServiceCar, []string{"Quito", "Guayaquil"}, 3)
	b := Catalog("cars-sbx", domain.ServiceCar, []string{"Quito", "Guayaquil"}, 3)

	require.Len(t, a, 3)
	assert.Equal(t, a, b)
	assert.Equal(t, "cars-sbx-car-1", a[0].Offering.ID)
	assert.Equal(t, "Guayaquil", a[1].Offering.City)
}
