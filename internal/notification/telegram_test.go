package notification

import (
	"context"
	"testing"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testLines() []domain.ReservationLine {
	return []domain.ReservationLine{{
		ServiceType: domain.ServiceHotel,
		OfferingID:  "h1",
		Quantity:    2,
		Subtotal:    decimal.NewFromInt(180),
	}}
}

func TestHoldCreatedText(t *testing.T) {
	hold := &domain.PreReservation{
		Total:     decimal.NewFromInt(180),
		Currency:  "USD",
		ExpiresAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		Itinerary: testLines(),
	}

	text := holdCreatedText(hold)

	assert.Contains(t, text, "180.00 USD")
	assert.Contains(t, text, "01.03.2026 12:30")
	assert.Contains(t, text, "- hotel h1 x2: 180.00")
}

func TestReservationTexts(t *testing.T) {
	res := &domain.Reservation{ID: "r1", Total: decimal.NewFromInt(180), Currency: "USD", Lines: testLines()}

	assert.Contains(t, reservationConfirmedText(res), "Reserva: r1")
	assert.Contains(t, reservationConfirmedText(res), "hotel h1")
	assert.Contains(t, reservationCancelledText(res), "r1")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(7)
	assert.NotPanics(t, func() {
		n.NotifyHoldExpired(context.Background(), domain.Customer{TelegramChatID: &chatID}, &domain.PreReservation{})
		n.NotifyReservationCancelled(context.Background(), domain.Customer{}, &domain.Reservation{})
	})
}
