package repository

import (
	"context"
	"testing"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/store/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	repo := NewUserRepo(memory.New[domain.User]())
	ctx := context.Background()

	u := &domain.User{Email: "a@b.com", Name: "Ana", Active: true}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "x@b.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_CreateDuplicateIsEmailTaken(t *testing.T) {
	repo := NewUserRepo(memory.New[domain.User]())
	ctx := context.Background()

	u := &domain.User{ID: "u1", Email: "a@b.com", Active: true}
	require.NoError(t, repo.Create(ctx, u))

	err := repo.Create(ctx, &domain.User{ID: "u1", Email: "a@b.com", Active: true})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	repo := NewUserRepo(memory.New[domain.User]())

	_, err := repo.Update(context.Background(), "missing", func(*domain.User) error { return nil })

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReservationRepository_StripsLines(t *testing.T) {
	s := memory.New[domain.Reservation]()
	repo := NewReservationRepo(s)
	ctx := context.Background()

	res := &domain.Reservation{
		UserID: "u1",
		State:  domain.ReservationPending,
		Lines:  []domain.ReservationLine{{OfferingID: "h1"}},
	}
	require.NoError(t, repo.Create(ctx, res))
	assert.Len(t, res.Lines, 1)

	stored, err := s.FindByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Lines)

	updated, err := repo.Update(ctx, res.ID, func(r *domain.Reservation) error {
		r.Lines = []domain.ReservationLine{{OfferingID: "h2"}}
		r.Notes = "late check-in"
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Lines)
	assert.Equal(t, "late check-in", updated.Notes)
}

func TestReservationRepository_ListByUserAndState(t *testing.T) {
	repo := NewReservationRepo(memory.New[domain.Reservation]())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Reservation{UserID: "u1", State: domain.ReservationPending}))
	require.NoError(t, repo.Create(ctx, &domain.Reservation{UserID: "u1", State: domain.ReservationConfirmed}))
	require.NoError(t, repo.Create(ctx, &domain.Reservation{UserID: "u2", State: domain.ReservationPending}))

	byUser, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	pending, err := repo.ListByState(ctx, domain.ReservationPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestReservationLineRepository(t *testing.T) {
	repo := NewReservationLineRepo(memory.New[domain.ReservationLine]())
	ctx := context.Background()

	l1 := &domain.ReservationLine{ReservationID: "r1", OfferingID: "h1"}
	l2 := &domain.ReservationLine{ReservationID: "r1", OfferingID: "c1"}
	require.NoError(t, repo.Create(ctx, l1))
	require.NoError(t, repo.Create(ctx, l2))
	require.NoError(t, repo.Create(ctx, &domain.ReservationLine{ReservationID: "r2", OfferingID: "f1"}))

	lines, err := repo.ListByReservation(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "h1", lines[0].OfferingID)
	assert.Equal(t, "c1", lines[1].OfferingID)

	require.NoError(t, repo.Delete(ctx, l1.ID))
	assert.ErrorIs(t, repo.Delete(ctx, l1.ID), domain.ErrLineNotFound)
}

func TestPaymentRepository_Lookups(t *testing.T) {
	repo := NewPaymentRepo(memory.New[domain.Payment]())
	ctx := context.Background()

	p := &domain.Payment{ReservationID: "r1", Amount: decimal.NewFromInt(10), State: domain.PaymentAuthorized, TransactionID: "TXN-1"}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Create(ctx, &domain.Payment{ReservationID: "r1", State: domain.PaymentPending}))

	byRes, err := repo.ListByReservation(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, byRes, 2)

	byTxn, err := repo.GetByTransactionID(ctx, "TXN-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byTxn.ID)

	_, err = repo.GetByTransactionID(ctx, "TXN-2")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPreReservationRepository_ListExpired(t *testing.T) {
	repo := NewPreReservationRepo(memory.New[domain.PreReservation]())
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	stale := domain.NewPreReservation(domain.Customer{UserID: "u1"}, nil, "USD", 10, "", now.Add(-time.Hour))
	fresh := domain.NewPreReservation(domain.Customer{UserID: "u1"}, nil, "USD", 30, "", now)
	edge := domain.NewPreReservation(domain.Customer{UserID: "u1"}, nil, "USD", 0, "", now)
	done := domain.NewPreReservation(domain.Customer{UserID: "u1"}, nil, "USD", 10, "", now.Add(-time.Hour))
	done.State = domain.HoldConfirmed

	for _, p := range []*domain.PreReservation{&stale, &fresh, &edge, &done} {
		require.NoError(t, repo.Create(ctx, p))
	}

	expired, err := repo.ListExpired(ctx, now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, stale.ID, expired[0].ID)
}

func TestPreReservationRepository_GetByIdempotencyKey(t *testing.T) {
	repo := NewPreReservationRepo(memory.New[domain.PreReservation]())
	ctx := context.Background()

	p := domain.NewPreReservation(domain.Customer{UserID: "u1"}, nil, "USD", 30, "key-1", time.Now())
	require.NoError(t, repo.Create(ctx, &p))

	got, err := repo.GetByIdempotencyKey(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = repo.GetByIdempotencyKey(ctx, "key-2")
	assert.ErrorIs(t, err, domain.ErrPreReservationNotFound)
}

func TestPreReservationRepository_CreateDuplicate(t *testing.T) {
	repo := NewPreReservationRepo(memory.New[domain.PreReservation]())
	ctx := context.Background()

	keyed := domain.NewPreReservation(domain.Customer{UserID: "u1"}, nil, "USD", 30, "key-1", time.Now())
	keyed.ID = "h1"
	require.NoError(t, repo.Create(ctx, &keyed))
	again := keyed
	err := repo.Create(ctx, &again)
	assert.ErrorIs(t, err, domain.ErrIdempotencyConflict)

	plain := domain.NewPreReservation(domain.Customer{UserID: "u1"}, nil, "USD", 30, "", time.Now())
	plain.ID = "h2"
	require.NoError(t, repo.Create(ctx, &plain))
	again = plain
	err = repo.Create(ctx, &again)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrIdempotencyConflict)
}

func TestServiceCacheRepository_Upsert(t *testing.T) {
	repo := NewServiceCacheRepo(memory.New[domain.ServiceOffering]())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, domain.ServiceOffering{ID: "h1", Provider: "a", Type: domain.ServiceHotel, Name: "old"}))
	require.NoError(t, repo.Upsert(ctx, domain.ServiceOffering{ID: "h1", Provider: "a", Type: domain.ServiceHotel, Name: "new"}))
	require.NoError(t, repo.Upsert(ctx, domain.ServiceOffering{ID: "c1", Provider: "b", Type: domain.ServiceCar}))

	got, err := repo.Get(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)

	byProvider, err := repo.ListByProvider(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, byProvider, 1)

	cars, err := repo.ListByType(ctx, domain.ServiceCar)
	require.NoError(t, err)
	assert.Len(t, cars, 1)

	_, err = repo.Get(ctx, "zzz")
	assert.ErrorIs(t, err, domain.ErrOfferingNotFound)
}
