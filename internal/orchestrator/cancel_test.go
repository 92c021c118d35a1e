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

// bookedReservation stores a PENDIENTE reservation with one remotely booked line per provider.
func (e *env) bookedReservation(t *testing.T, userID string, providers ...string) *domain.Reservation {
	t.Helper()
	var lines []domain.ReservationLine
	for _, name := range providers {
		lines = append(lines, domain.ReservationLine{
			ServiceType:       domain.ServiceRestaurant,
			OfferingID:        name + "-table",
			Provider:          name,
			Quantity:          1,
			UnitPrice:         decimal.NewFromInt(25),
			ProviderBookingID: "BKG-" + name,
		})
	}
	res, err := e.reservations.Create(context.Background(), domain.CreateReservationInput{
		UserID:   userID,
		Currency: "USD",
		Lines:    lines,
	})
	require.NoError(t, err)
	return res
}

func TestCancelReservation_PartialProviderFailure(t *testing.T) {
	e := newEnv(t)
	a := mocks.NewMockGateway(t)
	b := mocks.NewMockGateway(t)
	c := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("p-a", domain.ServiceRestaurant, true, a))
	require.NoError(t, e.registry.Register("p-b", domain.ServiceRestaurant, true, b))
	require.NoError(t, e.registry.Register("p-c", domain.ServiceRestaurant, true, c))
	u := e.user(t)
	res := e.bookedReservation(t, u.ID, "p-a", "p-b", "p-c")

	a.EXPECT().Cancel(mock.Anything, "BKG-p-a", "changed plans").Return(true, nil).Once()
	b.EXPECT().Cancel(mock.Anything, "BKG-p-b", "changed plans").Return(false, domain.ErrRemoteUnavailable).Times(2)
	c.EXPECT().Cancel(mock.Anything, "BKG-p-c", "changed plans").
		Return(false, &domain.RemoteFaultError{Provider: "p-c", Code: "too_late"}).Once()

	result, err := e.orchestrator(t).CancelReservation(context.Background(), res.ID, "changed plans")

	require.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Equal(t, domain.ReservationCancelled, result.Reservation.State)
	require.Len(t, result.Providers, 3)
	for _, out := range result.Providers {
		assert.Equal(t, out.Provider == "p-a", out.Cancelled, out.Provider)
	}

	stored, err := e.reservRepo.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, stored.State)
}

func TestCancelReservation_AllProvidersFail(t *testing.T) {
	e := newEnv(t)
	a := mocks.NewMockGateway(t)
	b := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("p-a", domain.ServiceRestaurant, true, a))
	require.NoError(t, e.registry.Register("p-b", domain.ServiceRestaurant, true, b))
	u := e.user(t)
	res := e.bookedReservation(t, u.ID, "p-a", "p-b")

	a.EXPECT().Cancel(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
	b.EXPECT().Cancel(mock.Anything, mock.Anything, mock.Anything).Return(false, domain.ErrRemoteUnavailable).Times(2)

	result, err := e.orchestrator(t).CancelReservation(context.Background(), res.ID, "")

	require.NoError(t, err)
	assert.False(t, result.Cancelled)

	stored, err := e.reservRepo.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationPending, stored.State)
}

func TestCancelReservation_NoRemoteBookings(t *testing.T) {
	e := newEnv(t)
	u := e.user(t)
	res, err := e.reservations.Create(context.Background(), domain.CreateReservationInput{
		UserID:   u.ID,
		Currency: "USD",
		Lines: []domain.ReservationLine{{
			ServiceType: domain.ServiceRestaurant,
			OfferingID:  "walk-in",
			Quantity:    2,
			UnitPrice:   decimal.NewFromInt(10),
		}},
	})
	require.NoError(t, err)

	result, err := e.orchestrator(t).CancelReservation(context.Background(), res.ID, "")

	require.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Empty(t, result.Providers)
}

func TestCancelReservation_AlreadyCancelled(t *testing.T) {
	e := newEnv(t)
	a := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("p-a", domain.ServiceRestaurant, true, a))
	u := e.user(t)
	res := e.bookedReservation(t, u.ID, "p-a")
	_, err := e.reservations.Cancel(context.Background(), res.ID)
	require.NoError(t, err)

	_, err = e.orchestrator(t).CancelReservation(context.Background(), res.ID, "")

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestCancelReservation_NotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.orchestrator(t).CancelReservation(context.Background(), "missing", "")

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestCancelReservation_RefundsCapturedPayment(t *testing.T) {
	e := newEnv(t)
	e.sandboxProvider(t, "tables-a")
	u := e.user(t)
	o := e.orchestrator(t)
	ctx := context.Background()

	hold, _, err := o.CreateHold(ctx, holdRequest(u.ID, "tables-a", 1))
	require.NoError(t, err)
	res, err := o.Confirm(ctx, hold.ID, "visa")
	require.NoError(t, err)

	result, err := o.CancelReservation(ctx, res.ID, "weather")

	require.NoError(t, err)
	assert.True(t, result.Cancelled)

	payments, err := e.payments.ListByReservation(ctx, res.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, domain.PaymentRefunded, payments[0].State)
}

func TestCancelReservation_WaitsForInFlightConfirm(t *testing.T) {
	e := newEnv(t)
	gw := mocks.NewMockGateway(t)
	require.NoError(t, e.registry.Register("tables-b", domain.ServiceRestaurant, true, gw))
	u := e.user(t)
	o := e.orchestrator(t)
	ctx := context.Background()

	gw.EXPECT().Quote(mock.Anything, mock.Anything).Return(domain.Quotation{
		Currency: "USD",
		Lines: []domain.QuotedLine{{
			OfferingID:  "b1",
			ServiceType: domain.ServiceRestaurant,
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(30),
		}},
	}, nil).Once()
	gw.EXPECT().CreateHold(mock.Anything, mock.Anything, domain.DefaultHoldMinutes).Return("HB-1", nil).Once()

	type cancelled struct {
		result *CancelResult
		err    error
	}
	done := make(chan cancelled, 1)
	gw.EXPECT().Confirm(mock.Anything, "HB-1", "visa").
		Run(func(_ context.Context, _ string, _ string) {
			reservations, err := e.reservRepo.ListByUser(ctx, u.ID)
			require.NoError(t, err)
			require.Len(t, reservations, 1)
			resID := reservations[0].ID
			go func() {
				result, err := o.CancelReservation(ctx, resID, "changed plans")
				done <- cancelled{result: result, err: err}
			}()

			select {
			case <-done:
				t.Error("cancellation finished while the reservation was still being confirmed")
			case <-time.After(50 * time.Millisecond):
			}
		}).
		Return("BKG-1", nil).Once()
	gw.EXPECT().Cancel(mock.Anything, "BKG-1", "changed plans").Return(true, nil).Once()

	req := holdRequest(u.ID, "tables-b", 1)
	req.Items[0].OfferingID = "b1"
	hold, _, err := o.CreateHold(ctx, req)
	require.NoError(t, err)

	res, err := o.Confirm(ctx, hold.ID, "visa")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, res.State)

	var got cancelled
	select {
	case got = <-done:
	case <-time.After(time.Second):
		t.Fatal("cancellation never ran")
	}
	require.NoError(t, got.err)
	assert.True(t, got.result.Cancelled)
	require.Len(t, got.result.Providers, 1)
	assert.True(t, got.result.Providers[0].Cancelled)

	payments, err := e.payments.ListByReservation(ctx, res.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, domain.PaymentRefunded, payments[0].State)
}
