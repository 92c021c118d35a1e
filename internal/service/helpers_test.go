package service

import (
	"context"
	"testing"
	"time"

	"github.com/klimatr26/booking-hub/internal/clock"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/paygate"
	"github.com/klimatr26/booking-hub/internal/repository"
	"github.com/klimatr26/booking-hub/internal/resilience"
	"github.com/klimatr26/booking-hub/internal/store/memory"
	"github.com/shopspring/decimal"
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

type fixture struct {
	clock        *clock.Manual
	users        *repository.UserRepository
	reservations *ReservationService
	payments     *PaymentService
}

func newFixture(t *testing.T, processor paygate.Processor) *fixture {
	t.Helper()
	log := newTestLogger(t)
	clk := clock.NewManual(testNow)

	users := repository.NewUserRepo(memory.New[domain.User]())
	resRepo := repository.NewReservationRepo(memory.New[domain.Reservation]())
	lineRepo := repository.NewReservationLineRepo(memory.New[domain.ReservationLine]())
	payRepo := repository.NewPaymentRepo(memory.New[domain.Payment]())

	policy := resilience.Policy{Attempts: 2, BaseDelay: time.Millisecond}
	return &fixture{
		clock:        clk,
		users:        users,
		reservations: NewReservationService(resRepo, lineRepo, payRepo, users, clk, log),
		payments:     NewPaymentService(payRepo, resRepo, processor, policy, clk, log),
	}
}

func (f *fixture) user(t *testing.T, active bool) *domain.User {
	t.Helper()
	u := &domain.User{Email: "u@example.com", Active: active}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) reservation(t *testing.T, prices ...int64) *domain.Reservation {
	t.Helper()
	u := f.user(t, true)
	var lines []domain.ReservationLine
	for i, p := range prices {
		lines = append(lines, domain.ReservationLine{
			ServiceType: domain.ServiceRestaurant,
			OfferingID:  "r" + string(rune('1'+i)),
			Provider:    "tables-a",
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(p),
		})
	}
	res, err := f.reservations.Create(context.Background(), domain.CreateReservationInput{
		UserID:   u.ID,
		Currency: "usd",
		Lines:    lines,
	})
	require.NoError(t, err)
	return res
}
