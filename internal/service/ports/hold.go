package ports

import (
	"context"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
)

type PreReservationRepo interface {
	Create(ctx context.Context, p *domain.PreReservation) error
	GetByID(ctx context.Context, id string) (*domain.PreReservation, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.PreReservation, error)
	ListByState(ctx context.Context, state domain.HoldState) ([]*domain.PreReservation, error)
	ListExpired(ctx context.Context, now time.Time) ([]*domain.PreReservation, error)
	Update(ctx context.Context, id string, mutate func(*domain.PreReservation) error) (*domain.PreReservation, error)
}

type ServiceCache interface {
	Upsert(ctx context.Context, o domain.ServiceOffering) error
	Get(ctx context.Context, id string) (*domain.ServiceOffering, error)
	ListByProvider(ctx context.Context, provider string) ([]domain.ServiceOffering, error)
	ListByType(ctx context.Context, typ domain.ServiceType) ([]domain.ServiceOffering, error)
}
