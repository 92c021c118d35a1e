package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/store"
)

// ServiceCacheRepository keeps the last fetched copy of every offering.
type ServiceCacheRepository struct {
	store store.Store[domain.ServiceOffering]
}

func NewServiceCacheRepo(s store.Store[domain.ServiceOffering]) *ServiceCacheRepository {
	return &ServiceCacheRepository{store: s}
}

// Upsert overwrites the cached copy, creating it on first sight.
func (r *ServiceCacheRepository) Upsert(ctx context.Context, o domain.ServiceOffering) error {
	replace := func(cur *domain.ServiceOffering) error {
		*cur = o
		return nil
	}

	_, err := r.store.Update(ctx, o.ID, replace)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("update cached offering: %w", err)
	}

	if _, err = r.store.Create(ctx, o); err != nil {
		// lost a race with another writer
		if errors.Is(err, store.ErrAlreadyExists) {
			if _, err = r.store.Update(ctx, o.ID, replace); err == nil {
				return nil
			}
		}
		return fmt.Errorf("insert cached offering: %w", err)
	}
	return nil
}

func (r *ServiceCacheRepository) Get(ctx context.Context, id string) (*domain.ServiceOffering, error) {
	o, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, domain.ErrOfferingNotFound)
	}
	return &o, nil
}

func (r *ServiceCacheRepository) ListByProvider(ctx context.Context, provider string) ([]domain.ServiceOffering, error) {
	items, err := r.store.FindByField(ctx, "provider", provider)
	if err != nil {
		return nil, fmt.Errorf("list cached offerings by provider: %w", err)
	}
	return items, nil
}

func (r *ServiceCacheRepository) ListByType(ctx context.Context, typ domain.ServiceType) ([]domain.ServiceOffering, error) {
	items, err := r.store.FindByField(ctx, "type", typ)
	if err != nil {
		return nil, fmt.Errorf("list cached offerings by type: %w", err)
	}
	return items, nil
}
