package httpgw

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Search(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)

		var f domain.SearchFilters
		require.NoError(t, json.NewDecoder(r.Body).Decode(&f))
		assert.Equal(t, "Quito", f.City)

		_ = json.NewEncoder(w).Encode([]domain.ServiceOffering{
			{ID: "h1", Type: domain.ServiceHotel, City: "Quito", UnitPrice: decimal.NewFromInt(80), Currency: "USD"},
		})
	})

	c := New("hotels-a", srv.URL, time.Second)
	res, err := c.Search(context.Background(), domain.SearchFilters{City: "Quito"})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "h1", res[0].ID)
	assert.Equal(t, "hotels-a", res[0].Provider)
	assert.True(t, decimal.NewFromInt(80).Equal(res[0].UnitPrice))
}

func TestClient_FaultBodyIsRemoteFault(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"fault":{"code":"SOLD_OUT","message":"no rooms left"}}`))
	})

	c := New("hotels-a", srv.URL, time.Second)
	_, err := c.CreateHold(context.Background(), domain.QuoteItem{OfferingID: "h1", Quantity: 1}, 30)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteFault)
	assert.NotErrorIs(t, err, domain.ErrRemoteUnavailable)

	var fault *domain.RemoteFaultError
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "SOLD_OUT", fault.Code)
	assert.Equal(t, "hotels-a", fault.Provider)
}

func TestClient_FaultBodyOn5xxIsStillRemoteFault(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"fault":{"code":"E42","message":"booking engine rejected"}}`))
	})

	c := New("cars-a", srv.URL, time.Second)
	_, err := c.Confirm(context.Background(), "hold-1", "card")

	assert.ErrorIs(t, err, domain.ErrRemoteFault)
}

func TestClient_5xxWithoutFaultIsUnavailable(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	c := New("cars-a", srv.URL, time.Second)
	_, err := c.GetDetail(context.Background(), "c1")

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.NotErrorIs(t, err, domain.ErrRemoteFault)
}

func TestClient_OversizedBodyIsUnavailable(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"`))
		_, _ = w.Write(bytes.Repeat([]byte("x"), maxBodyBytes))
		_, _ = w.Write([]byte(`"}]`))
	})

	c := New("hotels-a", srv.URL, 5*time.Second)
	_, err := c.Search(context.Background(), domain.SearchFilters{})

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestClient_TransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New("flights-a", url, time.Second)
	_, err := c.Search(context.Background(), domain.SearchFilters{})

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestClient_TimeoutIsUnavailable(t *testing.T) {
	release := make(chan struct{})
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	c := New("slow", srv.URL, 50*time.Millisecond)
	_, err := c.CheckAvailability(context.Background(), "h1", time.Now(), time.Now().Add(24*time.Hour), 1)

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestClient_HoldConfirmCancel(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/holds":
			var req holdRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 15, req.HoldMinutes)
			_, _ = w.Write([]byte(`{"hold_id":"H-1"}`))
		case "/holds/H-1/confirm":
			_, _ = w.Write([]byte(`{"booking_id":"B-1"}`))
		case "/bookings/B-1/cancel":
			_, _ = w.Write([]byte(`{"cancelled":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	c := New("hotels-a", srv.URL+"/", time.Second)
	ctx := context.Background()

	holdID, err := c.CreateHold(ctx, domain.QuoteItem{OfferingID: "h1", Quantity: 2}, 15)
	require.NoError(t, err)
	assert.Equal(t, "H-1", holdID)

	bookingID, err := c.Confirm(ctx, holdID, "card")
	require.NoError(t, err)
	assert.Equal(t, "B-1", bookingID)

	ok, err := c.Cancel(ctx, bookingID, "customer request")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClient_EmptyHoldIDIsFault(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	c := New("hotels-a", srv.URL, time.Second)
	_, err := c.CreateHold(context.Background(), domain.QuoteItem{OfferingID: "h1", Quantity: 1}, 30)

	assert.ErrorIs(t, err, domain.ErrRemoteFault)
}

func TestClient_Quote(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote", r.URL.Path)
		_, _ = w.Write([]byte(`{"lines":[{"offering_id":"h1","quantity":2,"unit_price":"50","subtotal":"100"}],"total":"100","currency":"USD"}`))
	})

	c := New("hotels-a", srv.URL, time.Second)
	q, err := c.Quote(context.Background(), []domain.QuoteItem{{OfferingID: "h1", Quantity: 2}})

	require.NoError(t, err)
	assert.Equal(t, "hotels-a", q.Provider)
	assert.True(t, decimal.NewFromInt(100).Equal(q.Total))
	require.Len(t, q.Lines, 1)
}
