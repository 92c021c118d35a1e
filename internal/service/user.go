package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/klimatr26/booking-hub/internal/clock"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/service/ports"
)

type UserService struct {
	repo     ports.UserRepo
	validate *validator.Validate
	clock    clock.Clock

	// serializes the email uniqueness check with the write that depends on it
	mu sync.Mutex
}

func NewUserService(repo ports.UserRepo, clk clock.Clock) *UserService {
	return &UserService{
		repo:     repo,
		validate: validator.New(),
		clock:    clk,
	}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	email, err := s.normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          email,
		Name:           strings.TrimSpace(input.Name),
		Phone:          strings.TrimSpace(input.Phone),
		TelegramChatID: input.TelegramChatID,
		Active:         true,
		RegisteredAt:   s.clock.Now(),
	}
	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Update applies the non-nil fields of input. Uniqueness is re-checked only when the email changes.
func (s *UserService) Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error) {
	var email string
	if input.Email != nil {
		normalized, err := s.normalizeEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		email = normalized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Email != nil && email != current.Email {
		if err = s.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, func(u *domain.User) error {
		if input.Email != nil {
			u.Email = email
		}
		if input.Name != nil {
			u.Name = strings.TrimSpace(*input.Name)
		}
		if input.Phone != nil {
			u.Phone = strings.TrimSpace(*input.Phone)
		}
		if input.TelegramChatID != nil {
			u.TelegramChatID = input.TelegramChatID
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// Delete deactivates the user; the record is kept.
func (s *UserService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Update(ctx, id, func(u *domain.User) error {
		u.Active = false
		return nil
	})
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

func (s *UserService) normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if err := s.validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidEmail, raw)
	}
	return email, nil
}

// ensureEmailFree checks every user, active or not, except selfID.
func (s *UserService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check email: %w", err)
	case existing.ID == selfID:
		return nil
	default:
		return domain.ErrEmailTaken
	}
}
