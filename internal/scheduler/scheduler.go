// Package scheduler periodically expires holds that outlived their hold window.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type holdExpirer interface {
	ExpireHolds(ctx context.Context) ([]*domain.PreReservation, error)
}

type Scheduler struct {
	expirer  holdExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(
	expirer holdExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		expirer:  expirer,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			_, _ = s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep. It returns how many holds were expired, which can be
// non-zero alongside an error when the sweep stopped partway.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	expired, err := s.expirer.ExpireHolds(ctx)
	for _, h := range expired {
		s.logger.Info("hold expired",
			logger.String("hold_id", h.ID),
			logger.String("user_id", h.Customer.UserID),
			logger.String("expires_at", h.ExpiresAt.Format(time.RFC3339)),
		)
	}
	if err != nil {
		s.logger.Error("failed to expire holds",
			logger.Int("expired", len(expired)),
			logger.String("error", err.Error()),
		)
		return len(expired), fmt.Errorf("expire holds: %w", err)
	}
	return len(expired), nil
}
