package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

type ctxKey struct{}

func TestScheduler_RunOnce_ReturnsExpiredCount(t *testing.T) {
	expirer := mocks.NewMockHoldExpirer(t)
	s := New(expirer, time.Minute, newTestLogger(t))
	ctx := context.WithValue(context.Background(), ctxKey{}, "sweep-1")

	expirer.EXPECT().ExpireHolds(mock.MatchedBy(func(c context.Context) bool {
		return c.Value(ctxKey{}) == "sweep-1"
	})).Return([]*domain.PreReservation{
		{ID: "h1", Customer: domain.Customer{UserID: "u1"}, State: domain.HoldExpired},
		{ID: "h2", Customer: domain.Customer{UserID: "u2"}, State: domain.HoldExpired},
		{ID: "h3", Customer: domain.Customer{UserID: "u1"}, State: domain.HoldExpired},
	}, nil).Once()

	n, err := s.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestScheduler_RunOnce_NothingToExpire(t *testing.T) {
	expirer := mocks.NewMockHoldExpirer(t)
	s := New(expirer, time.Minute, newTestLogger(t))

	expirer.EXPECT().ExpireHolds(mock.Anything).Return(nil, nil).Once()

	n, err := s.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestScheduler_RunOnce_PartialSweepReportsError(t *testing.T) {
	expirer := mocks.NewMockHoldExpirer(t)
	s := New(expirer, time.Minute, newTestLogger(t))
	storeErr := errors.New("store unavailable")

	expirer.EXPECT().ExpireHolds(mock.Anything).
		Return([]*domain.PreReservation{{ID: "h1"}, {ID: "h2"}}, storeErr).Once()

	n, err := s.RunOnce(context.Background())

	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, 2, n)
}

func TestScheduler_KeepsSweepingAfterFailedPass(t *testing.T) {
	expirer := mocks.NewMockHoldExpirer(t)
	s := New(expirer, 20*time.Millisecond, newTestLogger(t))

	var sweeps atomic.Int32
	recovered := make(chan struct{})
	expirer.EXPECT().ExpireHolds(mock.Anything).Return(nil, errors.New("db error")).
		Run(func(context.Context) { sweeps.Add(1) }).Once()
	expirer.EXPECT().ExpireHolds(mock.Anything).Return([]*domain.PreReservation{{ID: "h1"}}, nil).
		Run(func(context.Context) {
			if sweeps.Add(1) == 2 {
				close(recovered)
			}
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-recovered:
	case <-time.After(time.Second):
		t.Fatal("scheduler stopped sweeping after a failed pass")
	}
	cancel()
	<-done

	assert.GreaterOrEqual(t, int(sweeps.Load()), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockHoldExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
