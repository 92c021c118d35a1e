// Package resilience retries calls to unreliable remote backends.
package resilience

import (
	"context"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Policy configures Retry. The delay before attempt n+1 is BaseDelay*n.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
}

var DefaultPolicy = Policy{Attempts: 3, BaseDelay: 200 * time.Millisecond}

// Retry runs op up to policy.Attempts times with linear backoff and returns the last error.
// Errors for which domain.IsPermanent holds are returned without further attempts.
// Retry imposes no timeout of its own.
func Retry[T any](ctx context.Context, log logger.Logger, policy Policy, name string, op func(ctx context.Context) (T, error)) (T, error) {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		res T
		err error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		res, err = op(ctx)
		if err == nil {
			return res, nil
		}

		log.Warn("remote call failed",
			logger.String("call", name),
			logger.Int("attempt", attempt),
			logger.Int("max_attempts", attempts),
			logger.String("error", err.Error()),
		)

		if domain.IsPermanent(err) || attempt == attempts {
			break
		}

		delay := policy.BaseDelay * time.Duration(attempt)
		if delay <= 0 {
			continue
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			var zero T
			return zero, err
		case <-timer.C:
		}
	}

	var zero T
	return zero, err
}

// Do is Retry for operations without a result.
func Do(ctx context.Context, log logger.Logger, policy Policy, name string, op func(ctx context.Context) error) error {
	_, err := Retry(ctx, log, policy, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}
