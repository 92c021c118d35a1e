package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/store"
)

type UserRepository struct {
	store store.Store[domain.User]
}

func NewUserRepo(s store.Store[domain.User]) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	created, err := r.store.Create(ctx, *user)
	if err != nil {
		// the postgres store enforces email uniqueness with an index
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	*user = created
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, domain.ErrUserNotFound)
	}
	return &u, nil
}

// GetByEmail matches the stored (already normalized) email exactly.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.store.FindByField(ctx, "email", email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &users[0], nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	users, err := r.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return pointers(users), nil
}

func (r *UserRepository) Update(ctx context.Context, id string, mutate func(*domain.User) error) (*domain.User, error) {
	u, err := r.store.Update(ctx, id, mutate)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, domain.ErrEmailTaken
		}
		return nil, translate(err, domain.ErrUserNotFound)
	}
	return &u, nil
}
