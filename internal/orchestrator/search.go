package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/provider"
	"github.com/klimatr26/booking-hub/internal/resilience"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

type SearchRequest struct {
	Types   []domain.ServiceType
	Filters domain.SearchFilters
}

// SearchResult holds the merged offerings. Zero offerings is a valid outcome, not an error.
type SearchResult struct {
	Offerings          []domain.ServiceOffering `json:"offerings"`
	ProvidersTotal     int                      `json:"providers_total"`
	ProvidersSucceeded int                      `json:"providers_succeeded"`
	ProvidersFailed    []string                 `json:"providers_failed,omitempty"`
}

// Detail is an offering together with where it came from.
type Detail struct {
	Offering  domain.ServiceOffering `json:"offering"`
	FromCache bool                   `json:"from_cache"`
}

// Search queries every enabled provider of the requested types concurrently and waits for all
// of them. A failing provider is logged and left out of the result.
func (o *Orchestrator) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	for _, t := range req.Types {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown service type %q", domain.ErrValidation, t)
		}
	}

	targets := o.providers.Enabled(req.Types...)
	found := make([][]domain.ServiceOffering, len(targets))
	failed := make([]error, len(targets))

	var g errgroup.Group
	g.SetLimit(o.opts.MaxParallel)
	for i, p := range targets {
		g.Go(func() error {
			offerings, err := resilience.Retry(ctx, o.logger, o.opts.Retry, p.Name+".search",
				func(ctx context.Context) ([]domain.ServiceOffering, error) {
					return p.Gateway.Search(ctx, req.Filters)
				})
			if err != nil {
				failed[i] = err
				return nil
			}
			found[i] = o.normalize(p, offerings)
			return nil
		})
	}
	_ = g.Wait()

	res := &SearchResult{ProvidersTotal: len(targets), Offerings: []domain.ServiceOffering{}}
	seen := make(map[string]bool)
	for i, p := range targets {
		if err := failed[i]; err != nil {
			o.logger.Warn("provider search failed",
				logger.String("provider", p.Name),
				logger.String("error", err.Error()),
			)
			res.ProvidersFailed = append(res.ProvidersFailed, p.Name)
			continue
		}
		res.ProvidersSucceeded++
		for _, off := range found[i] {
			if seen[off.ID] {
				continue
			}
			seen[off.ID] = true
			res.Offerings = append(res.Offerings, off)
		}
	}

	for _, off := range res.Offerings {
		if err := o.cache.Upsert(ctx, off); err != nil {
			o.logger.Warn("failed to cache offering",
				logger.String("offering_id", off.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	o.logger.Info("search completed",
		logger.Int("providers", res.ProvidersTotal),
		logger.Int("succeeded", res.ProvidersSucceeded),
		logger.Int("offerings", len(res.Offerings)),
	)
	return res, nil
}

// GetDetail asks the owning provider and falls back to the cached copy when that fails.
func (o *Orchestrator) GetDetail(ctx context.Context, providerName, id string) (*Detail, error) {
	p, err := o.providers.Get(providerName)
	if err != nil {
		return nil, err
	}

	off, err := resilience.Retry(ctx, o.logger, o.opts.Retry, p.Name+".detail",
		func(ctx context.Context) (domain.ServiceOffering, error) {
			return p.Gateway.GetDetail(ctx, id)
		})
	if err == nil {
		off = o.normalize(p, []domain.ServiceOffering{off})[0]
		if cacheErr := o.cache.Upsert(ctx, off); cacheErr != nil {
			o.logger.Warn("failed to cache offering",
				logger.String("offering_id", off.ID),
				logger.String("error", cacheErr.Error()),
			)
		}
		return &Detail{Offering: off}, nil
	}

	cached, cacheErr := o.cache.Get(ctx, id)
	if cacheErr != nil || cached.Provider != p.Name {
		return nil, fmt.Errorf("get detail %s from %s: %w", id, p.Name, err)
	}

	o.logger.Warn("serving cached offering",
		logger.String("provider", p.Name),
		logger.String("offering_id", id),
		logger.String("error", err.Error()),
	)
	return &Detail{Offering: *cached, FromCache: true}, nil
}

func (o *Orchestrator) CheckAvailability(ctx context.Context, providerName, id string, start, end time.Time, units int) (bool, error) {
	if !end.After(start) {
		return false, fmt.Errorf("%w: end must be after start", domain.ErrValidation)
	}
	if units <= 0 {
		return false, fmt.Errorf("%w: units must be positive", domain.ErrValidation)
	}
	p, err := o.providers.Get(providerName)
	if err != nil {
		return false, err
	}
	return resilience.Retry(ctx, o.logger, o.opts.Retry, p.Name+".availability",
		func(ctx context.Context) (bool, error) {
			return p.Gateway.CheckAvailability(ctx, id, start, end, units)
		})
}

func (o *Orchestrator) Quote(ctx context.Context, providerName string, items []domain.QuoteItem) (*domain.Quotation, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", domain.ErrValidation)
	}
	p, err := o.providers.Get(providerName)
	if err != nil {
		return nil, err
	}
	q, err := resilience.Retry(ctx, o.logger, o.opts.Retry, p.Name+".quote",
		func(ctx context.Context) (domain.Quotation, error) {
			return p.Gateway.Quote(ctx, items)
		})
	if err != nil {
		return nil, err
	}
	q.Provider = p.Name
	return &q, nil
}

// normalize stamps provider ownership and fetch time onto gateway results.
func (o *Orchestrator) normalize(p provider.Provider, offerings []domain.ServiceOffering) []domain.ServiceOffering {
	now := o.clock.Now()
	for i := range offerings {
		offerings[i].Provider = p.Name
		if offerings[i].Type == "" {
			offerings[i].Type = p.Type
		}
		if offerings[i].FetchedAt.IsZero() {
			offerings[i].FetchedAt = now
		}
	}
	return offerings
}
