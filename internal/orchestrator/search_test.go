package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/provider/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func offering(id string) domain.ServiceOffering {
	return domain.ServiceOffering{
		ID:        id,
		Type:      domain.ServiceHotel,
		Name:      "Hotel " + id,
		City:      "Cuenca",
		UnitPrice: decimal.NewFromInt(90),
		Currency:  "USD",
		Available: true,
	}
}

func TestSearch_SkipsFailingProvider(t *testing.T) {
	e := newEnv(t)
	a := mocks.NewMockGateway(t)
	b := mocks.NewMockGateway(t)
	c := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("hotels-a", domain.ServiceHotel, true, a))
	require.NoError(t, e.registry.Register("hotels-b", domain.ServiceHotel, true, b))
	require.NoError(t, e.registry.Register("hotels-c", domain.ServiceHotel, true, c))

	a.EXPECT().Search(mock.Anything, mock.Anything).Return([]domain.ServiceOffering{offering("a1")}, nil)
	b.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, domain.ErrRemoteUnavailable).Times(2)
	c.EXPECT().Search(mock.Anything, mock.Anything).Return([]domain.ServiceOffering{offering("c1"), offering("c2")}, nil)

	res, err := e.orchestrator(t).Search(context.Background(), SearchRequest{Types: []domain.ServiceType{domain.ServiceHotel}})

	require.NoError(t, err)
	assert.Equal(t, 3, res.ProvidersTotal)
	assert.Equal(t, 2, res.ProvidersSucceeded)
	assert.Equal(t, []string{"hotels-b"}, res.ProvidersFailed)

	var ids []string
	for _, off := range res.Offerings {
		ids = append(ids, off.ID)
	}
	assert.ElementsMatch(t, []string{"a1", "c1", "c2"}, ids)

	cached, err := e.cache.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "hotels-c", cached.Provider)
	assert.True(t, testNow.Equal(cached.FetchedAt))
}

func TestSearch_AllProvidersFailIsEmptyResult(t *testing.T) {
	e := newEnv(t)
	a := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("hotels-a", domain.ServiceHotel, true, a))
	a.EXPECT().Search(mock.Anything, mock.Anything).
		Return(nil, &domain.RemoteFaultError{Provider: "hotels-a", Code: "bad_city"}).Once()

	res, err := e.orchestrator(t).Search(context.Background(), SearchRequest{})

	require.NoError(t, err)
	assert.NotNil(t, res.Offerings)
	assert.Empty(t, res.Offerings)
	assert.Equal(t, 0, res.ProvidersSucceeded)
}

func TestSearch_SkipsDisabledAndOtherTypes(t *testing.T) {
	e := newEnv(t)
	enabled := mocks.NewMockGateway(t)
	disabled := mocks.NewMockGateway(t)
	cars := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("hotels-a", domain.ServiceHotel, true, enabled))
	require.NoError(t, e.registry.Register("hotels-off", domain.ServiceHotel, false, disabled))
	require.NoError(t, e.registry.Register("cars-a", domain.ServiceCar, true, cars))

	enabled.EXPECT().Search(mock.Anything, mock.Anything).Return([]domain.ServiceOffering{offering("a1")}, nil).Once()

	res, err := e.orchestrator(t).Search(context.Background(), SearchRequest{Types: []domain.ServiceType{domain.ServiceHotel}})

	require.NoError(t, err)
	assert.Equal(t, 1, res.ProvidersTotal)
	require.Len(t, res.Offerings, 1)
	assert.Equal(t, "hotels-a", res.Offerings[0].Provider)
}

func TestSearch_DeduplicatesByID(t *testing.T) {
	e := newEnv(t)
	a := mocks.NewMockGateway(t)
	b := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("hotels-a", domain.ServiceHotel, true, a))
	require.NoError(t, e.registry.Register("hotels-b", domain.ServiceHotel, true, b))

	a.EXPECT().Search(mock.Anything, mock.Anything).Return([]domain.ServiceOffering{offering("dup")}, nil)
	b.EXPECT().Search(mock.Anything, mock.Anything).Return([]domain.ServiceOffering{offering("dup")}, nil)

	res, err := e.orchestrator(t).Search(context.Background(), SearchRequest{})

	require.NoError(t, err)
	require.Len(t, res.Offerings, 1)
	assert.Equal(t, "hotels-a", res.Offerings[0].Provider)
}

func TestSearch_UnknownType(t *testing.T) {
	e := newEnv(t)

	_, err := e.orchestrator(t).Search(context.Background(), SearchRequest{Types: []domain.ServiceType{"spa"}})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetDetail_FallsBackToCache(t *testing.T) {
	e := newEnv(t)
	gw := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("hotels-a", domain.ServiceHotel, true, gw))
	o := e.orchestrator(t)
	ctx := context.Background()

	gw.EXPECT().GetDetail(mock.Anything, "h1").Return(offering("h1"), nil).Once()
	fresh, err := o.GetDetail(ctx, "hotels-a", "h1")
	require.NoError(t, err)
	assert.False(t, fresh.FromCache)

	gw.EXPECT().GetDetail(mock.Anything, "h1").Return(domain.ServiceOffering{}, domain.ErrRemoteUnavailable).Times(2)
	stale, err := o.GetDetail(ctx, "hotels-a", "h1")

	require.NoError(t, err)
	assert.True(t, stale.FromCache)
	assert.Equal(t, fresh.Offering.ID, stale.Offering.ID)
	assert.True(t, fresh.Offering.UnitPrice.Equal(stale.Offering.UnitPrice))
}

func TestGetDetail_NoCachedCopy(t *testing.T) {
	e := newEnv(t)
	gw := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("hotels-a", domain.ServiceHotel, true, gw))
	gw.EXPECT().GetDetail(mock.Anything, "h1").Return(domain.ServiceOffering{}, domain.ErrRemoteUnavailable).Times(2)

	_, err := e.orchestrator(t).GetDetail(context.Background(), "hotels-a", "h1")

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestGetDetail_CachedCopyOfAnotherProviderIsIgnored(t *testing.T) {
	e := newEnv(t)
	gw := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("hotels-a", domain.ServiceHotel, true, gw))
	other := offering("h1")
	other.Provider = "hotels-b"
	require.NoError(t, e.cache.Upsert(context.Background(), other))
	gw.EXPECT().GetDetail(mock.Anything, "h1").Return(domain.ServiceOffering{}, domain.ErrRemoteUnavailable).Times(2)

	_, err := e.orchestrator(t).GetDetail(context.Background(), "hotels-a", "h1")

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestGetDetail_DisabledProvider(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.registry.Register("hotels-off", domain.ServiceHotel, false, mocks.NewMockGateway(t)))

	_, err := e.orchestrator(t).GetDetail(context.Background(), "hotels-off", "h1")

	assert.ErrorIs(t, err, domain.ErrProviderDisabled)
}

func TestGetDetail_UnknownProvider(t *testing.T) {
	e := newEnv(t)

	_, err := e.orchestrator(t).GetDetail(context.Background(), "nope", "h1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckAvailability(t *testing.T) {
	e := newEnv(t)
	e.sandboxProvider(t, "tables-a")
	o := e.orchestrator(t)
	ctx := context.Background()
	end := testNow.Add(2 * time.Hour)

	ok, err := o.CheckAvailability(ctx, "tables-a", "tables-a-restaurant-1", testNow, end, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = o.CheckAvailability(ctx, "tables-a", "tables-a-restaurant-1", testNow, end, 11)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = o.CheckAvailability(ctx, "tables-a", "tables-a-restaurant-1", end, testNow, 1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestQuote(t *testing.T) {
	e := newEnv(t)
	e.sandboxProvider(t, "tables-a")

	q, err := e.orchestrator(t).Quote(context.Background(), "tables-a", []domain.QuoteItem{
		{OfferingID: "tables-a-restaurant-1", Quantity: 2},
		{OfferingID: "tables-a-restaurant-2", Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, "tables-a", q.Provider)
	assert.Equal(t, "135.00", q.Total.StringFixed(2))
}
