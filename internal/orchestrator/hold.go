package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/resilience"
	"github.com/wb-go/wbf/logger"
)

// CreateHold prices the itinerary, places a hold at every provider and stores a BLOQUEADO
// pre-reservation. With an idempotency key, a repeated request returns the stored hold
// untouched and replayed is true.
func (o *Orchestrator) CreateHold(ctx context.Context, req domain.HoldRequest) (hold *domain.PreReservation, replayed bool, err error) {
	if req.IdempotencyKey != "" {
		unlock := o.idempotencyLocks.Lock(req.IdempotencyKey)
		defer unlock()

		existing, err := o.replay(ctx, req)
		if err != nil || existing != nil {
			return existing, existing != nil, err
		}
	}

	holdMinutes := o.opts.DefaultHoldMinutes
	if req.HoldMinutes != nil {
		holdMinutes = *req.HoldMinutes
	}
	if holdMinutes < 0 {
		return nil, false, fmt.Errorf("%w: hold_minutes must not be negative", domain.ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, false, fmt.Errorf("%w: at least one item is required", domain.ErrValidation)
	}

	user, err := o.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, false, fmt.Errorf("check user: %w", err)
	}
	if !user.Active {
		return nil, false, domain.ErrUserInactive
	}

	lines, currency, err := o.priceItinerary(ctx, req.Items)
	if err != nil {
		return nil, false, err
	}

	for i := range lines {
		line := &lines[i]
		p, err := o.providers.Get(line.Provider)
		if err != nil {
			o.releaseHolds(ctx, lines[:i], "hold creation failed")
			return nil, false, err
		}
		item := quoteItem(*line)
		holdID, err := resilience.Retry(ctx, o.logger, o.opts.Retry, p.Name+".hold",
			func(ctx context.Context) (string, error) {
				return p.Gateway.CreateHold(ctx, item, holdMinutes)
			})
		if err != nil {
			o.releaseHolds(ctx, lines[:i], "hold creation failed")
			return nil, false, fmt.Errorf("hold %s at %s: %w", line.OfferingID, line.Provider, err)
		}
		line.ProviderHoldID = holdID
	}

	created := domain.NewPreReservation(user.Customer(), lines, currency, holdMinutes, req.IdempotencyKey, o.clock.Now())
	created.ID = uuid.New().String()
	if err = o.holds.Create(ctx, &created); err != nil {
		o.releaseHolds(ctx, lines, "hold not stored")
		// another instance stored a hold for the same key first
		if req.IdempotencyKey != "" && errors.Is(err, domain.ErrIdempotencyConflict) {
			existing, err := o.replay(ctx, req)
			if err != nil {
				return nil, false, err
			}
			if existing != nil {
				return existing, true, nil
			}
		}
		return nil, false, fmt.Errorf("store hold: %w", err)
	}

	o.logger.Info("hold created",
		logger.String("hold_id", created.ID),
		logger.String("user_id", req.UserID),
		logger.String("total", created.Total.StringFixed(2)),
		logger.Int("hold_minutes", holdMinutes),
	)

	o.notify(ctx, func(ctx context.Context) {
		o.notifier.NotifyHoldCreated(ctx, created.Customer, &created)
	})
	return &created, false, nil
}

// replay returns the hold already stored under req's idempotency key, or nil when there is none.
func (o *Orchestrator) replay(ctx context.Context, req domain.HoldRequest) (*domain.PreReservation, error) {
	existing, err := o.holds.GetByIdempotencyKey(ctx, req.IdempotencyKey)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("check idempotency key: %w", err)
	}
	if existing.Customer.UserID != req.UserID {
		return nil, fmt.Errorf("%w: key %q belongs to another customer",
			domain.ErrIdempotencyConflict, req.IdempotencyKey)
	}
	return existing, nil
}

// releaseHolds gives provider holds back best-effort; failures are only logged and the
// provider frees them on its own once they expire.
func (o *Orchestrator) releaseHolds(ctx context.Context, lines []domain.ReservationLine, reason string) {
	for _, line := range lines {
		if line.ProviderHoldID == "" {
			continue
		}
		p, err := o.providers.Get(line.Provider)
		if err != nil {
			continue
		}
		_, err = resilience.Retry(ctx, o.logger, o.opts.Retry, p.Name+".release",
			func(ctx context.Context) (bool, error) {
				return p.Gateway.Cancel(ctx, line.ProviderHoldID, reason)
			})
		if err != nil {
			o.logger.Warn("failed to release provider hold",
				logger.String("provider", line.Provider),
				logger.String("provider_hold_id", line.ProviderHoldID),
				logger.String("error", err.Error()),
			)
		}
	}
}

func (o *Orchestrator) GetHold(ctx context.Context, id string) (*domain.PreReservation, error) {
	return o.holds.GetByID(ctx, id)
}

// priceItinerary resolves each item's provider and prices it with one quote per provider.
func (o *Orchestrator) priceItinerary(ctx context.Context, items []domain.HoldItem) ([]domain.ReservationLine, string, error) {
	lines := make([]domain.ReservationLine, len(items))
	byProvider := make(map[string][]int)
	var order []string

	for i, item := range items {
		if item.OfferingID == "" {
			return nil, "", fmt.Errorf("%w: item %d has no offering_id", domain.ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return nil, "", fmt.Errorf("%w: item %d quantity must be positive", domain.ErrValidation, i)
		}
		name, err := o.resolveProvider(ctx, item)
		if err != nil {
			return nil, "", err
		}
		if _, ok := byProvider[name]; !ok {
			order = append(order, name)
		}
		byProvider[name] = append(byProvider[name], i)
		lines[i] = domain.ReservationLine{
			ID:          uuid.New().String(),
			ServiceType: item.Type,
			OfferingID:  item.OfferingID,
			Provider:    name,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
			Legs:        item.Legs,
		}
	}

	currency := ""
	for _, name := range order {
		p, err := o.providers.Get(name)
		if err != nil {
			return nil, "", err
		}
		idx := byProvider[name]
		quoteItems := make([]domain.QuoteItem, 0, len(idx))
		for _, i := range idx {
			quoteItems = append(quoteItems, quoteItem(domain.ReservationLine{
				OfferingID: items[i].OfferingID,
				Quantity:   items[i].Quantity,
				StartDate:  items[i].StartDate,
				EndDate:    items[i].EndDate,
				Legs:       items[i].Legs,
			}))
		}

		q, err := resilience.Retry(ctx, o.logger, o.opts.Retry, p.Name+".quote",
			func(ctx context.Context) (domain.Quotation, error) {
				return p.Gateway.Quote(ctx, quoteItems)
			})
		if err != nil {
			return nil, "", fmt.Errorf("quote at %s: %w", p.Name, err)
		}
		if len(q.Lines) != len(idx) {
			return nil, "", &domain.RemoteFaultError{Provider: p.Name, Code: "quote_mismatch",
				Message: fmt.Sprintf("quoted %d lines for %d items", len(q.Lines), len(idx))}
		}
		if currency == "" {
			currency = q.Currency
		} else if q.Currency != currency {
			return nil, "", fmt.Errorf("%w: itinerary mixes %s and %s", domain.ErrValidation, currency, q.Currency)
		}

		for k, i := range idx {
			ql := q.Lines[k]
			line := &lines[i]
			if line.ServiceType == "" {
				line.ServiceType = ql.ServiceType
			}
			if line.ServiceType == "" {
				line.ServiceType = p.Type
			}
			line.Price(items[i].Quantity, ql.UnitPrice)
			if err = line.Validate(); err != nil {
				return nil, "", err
			}
		}
	}

	if currency == "" {
		return nil, "", fmt.Errorf("%w: providers quoted no currency", domain.ErrValidation)
	}
	return lines, currency, nil
}

// resolveProvider uses the item's provider or the one that owns the cached offering.
func (o *Orchestrator) resolveProvider(ctx context.Context, item domain.HoldItem) (string, error) {
	name := item.Provider
	if name == "" {
		cached, err := o.cache.Get(ctx, item.OfferingID)
		if err != nil {
			return "", fmt.Errorf("%w: provider is required for offering %s", domain.ErrValidation, item.OfferingID)
		}
		name = cached.Provider
	}
	if _, err := o.providers.Get(name); err != nil {
		return "", err
	}
	return name, nil
}

func quoteItem(l domain.ReservationLine) domain.QuoteItem {
	return domain.QuoteItem{
		OfferingID: l.OfferingID,
		Quantity:   l.Quantity,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Legs:       l.Legs,
	}
}

// ExpireHolds moves every BLOQUEADO hold past its expiry to EXPIRADO. Safe to call repeatedly.
func (o *Orchestrator) ExpireHolds(ctx context.Context) ([]*domain.PreReservation, error) {
	now := o.clock.Now()
	candidates, err := o.holds.ListExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list expired holds: %w", err)
	}

	var expired []*domain.PreReservation
	for _, c := range candidates {
		h, err := o.expireOne(ctx, c.ID, now)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidState) {
				continue // confirmed or expired by a concurrent caller
			}
			return expired, err
		}
		expired = append(expired, h)
	}

	if len(expired) > 0 {
		o.logger.Info("expired holds swept", logger.Int("count", len(expired)))
	}
	return expired, nil
}

func (o *Orchestrator) expireOne(ctx context.Context, id string, now time.Time) (*domain.PreReservation, error) {
	unlock := o.holdLocks.Lock(id)
	defer unlock()

	h, err := o.holds.Update(ctx, id, func(p *domain.PreReservation) error {
		if !p.ExpiredAt(now) {
			return fmt.Errorf("%w: hold %s not expired yet", domain.ErrInvalidState, p.ID)
		}
		return p.Expire(now)
	})
	if err != nil {
		return nil, err
	}

	o.notify(ctx, func(ctx context.Context) {
		o.notifier.NotifyHoldExpired(ctx, h.Customer, h)
	})
	return h, nil
}
