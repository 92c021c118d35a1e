package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/klimatr26/booking-hub/internal/clock"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/paygate"
	"github.com/klimatr26/booking-hub/internal/provider"
	"github.com/klimatr26/booking-hub/internal/provider/sandbox"
	"github.com/klimatr26/booking-hub/internal/repository"
	"github.com/klimatr26/booking-hub/internal/resilience"
	"github.com/klimatr26/booking-hub/internal/service"
	"github.com/klimatr26/booking-hub/internal/service/ports"
	"github.com/klimatr26/booking-hub/internal/store/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type env struct {
	clock        *clock.Manual
	registry     *provider.Registry
	cache        *repository.ServiceCacheRepository
	holds        *repository.PreReservationRepository
	users        *repository.UserRepository
	reservations *service.ReservationService
	reservRepo   *repository.ReservationRepository
	payments     *service.PaymentService
	notifier     ports.BookingNotifier
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log := newTestLogger(t)
	clk := clock.NewManual(testNow)
	policy := resilience.Policy{Attempts: 2, BaseDelay: time.Millisecond}

	users := repository.NewUserRepo(memory.New[domain.User]())
	resRepo := repository.NewReservationRepo(memory.New[domain.Reservation]())
	lineRepo := repository.NewReservationLineRepo(memory.New[domain.ReservationLine]())
	payRepo := repository.NewPaymentRepo(memory.New[domain.Payment]())

	return &env{
		clock:        clk,
		registry:     provider.NewRegistry(),
		cache:        repository.NewServiceCacheRepo(memory.New[domain.ServiceOffering]()),
		holds:        repository.NewPreReservationRepo(memory.New[domain.PreReservation]()),
		users:        users,
		reservRepo:   resRepo,
		reservations: service.NewReservationService(resRepo, lineRepo, payRepo, users, clk, log),
		payments: service.NewPaymentService(payRepo, resRepo, paygate.NewSandbox(decimal.NewFromInt(10000)),
			policy, clk, log),
	}
}

func (e *env) orchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	return New(e.registry, e.cache, e.holds, e.users, e.reservations, e.payments, e.notifier,
		e.clock, newTestLogger(t), Options{
			Retry:       resilience.Policy{Attempts: 2, BaseDelay: time.Millisecond},
			MaxParallel: 4,
		})
}

// sandboxProvider registers an enabled restaurant provider with three offerings priced 40, 55 and 70.
func (e *env) sandboxProvider(t *testing.T, name string) *sandbox.Gateway {
	t.Helper()
	gw := sandbox.New(name, "USD", sandbox.Catalog(name, domain.ServiceRestaurant, []string{"Quito"}, 3)).
		WithClock(e.clock.Now)
	require.NoError(t, e.registry.Register(name, domain.ServiceRestaurant, true, gw))
	return gw
}

func (e *env) user(t *testing.T) *domain.User {
	t.Helper()
	u := &domain.User{Email: "ana@example.com", Name: "Ana", Active: true}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func minutes(n int) *int { return &n }

func holdRequest(userID, providerName string, quantity int) domain.HoldRequest {
	return domain.HoldRequest{
		UserID: userID,
		Items: []domain.HoldItem{{
			Provider:   providerName,
			OfferingID: providerName + "-restaurant-1",
			Quantity:   quantity,
		}},
	}
}
