package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/klimatr26/booking-hub/internal/clock"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	repo     ports.ReservationRepo
	lines    ports.ReservationLineRepo
	payments ports.PaymentRepo
	users    ports.UserRepo
	clock    clock.Clock
	logger   logger.Logger

	// line edits and the total recomputation that follows them run under mu
	mu sync.Mutex
}

func NewReservationService(
	repo ports.ReservationRepo,
	lines ports.ReservationLineRepo,
	payments ports.PaymentRepo,
	users ports.UserRepo,
	clk clock.Clock,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:     repo,
		lines:    lines,
		payments: payments,
		users:    users,
		clock:    clk,
		logger:   logger,
	}
}

// Create stores a PENDIENTE reservation with its lines and the total they sum to.
func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}
	if len(input.Lines) == 0 {
		return nil, fmt.Errorf("%w: at least one line is required", domain.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !user.Active {
		return nil, domain.ErrUserInactive
	}

	lines := make([]domain.ReservationLine, 0, len(input.Lines))
	for _, l := range input.Lines {
		l.ID = uuid.New().String()
		l.Price(l.Quantity, l.UnitPrice)
		if err = l.Validate(); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	now := s.clock.Now()
	res := &domain.Reservation{
		ID:               uuid.New().String(),
		UserID:           input.UserID,
		PreReservationID: input.PreReservationID,
		Currency:         currency,
		State:            domain.ReservationPending,
		Notes:            input.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	res.Recompute(lines)

	if err = s.repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	for i := range lines {
		lines[i].ReservationID = res.ID
		if err = s.lines.Create(ctx, &lines[i]); err != nil {
			return nil, fmt.Errorf("create reservation line: %w", err)
		}
	}
	res.Lines = lines

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("user_id", res.UserID),
		logger.String("total", res.Total.StringFixed(2)),
		logger.Int("lines", len(lines)),
	)

	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, res)
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(ctx, items)
}

func (s *ReservationService) ListByState(ctx context.Context, state domain.ReservationState) ([]*domain.Reservation, error) {
	items, err := s.repo.ListByState(ctx, state)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(ctx, items)
}

func (s *ReservationService) AddLine(ctx context.Context, id string, line domain.ReservationLine) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.editable(ctx, id)
	if err != nil {
		return nil, err
	}

	line.ID = uuid.New().String()
	line.ReservationID = res.ID
	line.ProviderBookingID = ""
	line.Price(line.Quantity, line.UnitPrice)
	if err = line.Validate(); err != nil {
		return nil, err
	}
	if err = s.lines.Create(ctx, &line); err != nil {
		return nil, fmt.Errorf("create reservation line: %w", err)
	}

	return s.recompute(ctx, id)
}

func (s *ReservationService) RemoveLine(ctx context.Context, id, lineID string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.editable(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.ownedLine(ctx, id, lineID); err != nil {
		return nil, err
	}
	if err := s.lines.Delete(ctx, lineID); err != nil {
		return nil, err
	}

	return s.recompute(ctx, id)
}

// UpdateLine changes quantity and/or unit price; the subtotal and total follow.
func (s *ReservationService) UpdateLine(ctx context.Context, id, lineID string, change domain.LineChange) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.editable(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.ownedLine(ctx, id, lineID); err != nil {
		return nil, err
	}

	_, err := s.lines.Update(ctx, lineID, func(l *domain.ReservationLine) error {
		qty, price := l.Quantity, l.UnitPrice
		if change.Quantity != nil {
			qty = *change.Quantity
		}
		if change.UnitPrice != nil {
			price = *change.UnitPrice
		}
		l.Price(qty, price)
		return l.Validate()
	})
	if err != nil {
		return nil, fmt.Errorf("update reservation line: %w", err)
	}

	return s.recompute(ctx, id)
}

func (s *ReservationService) UpdateNotes(ctx context.Context, id, notes string) (*domain.Reservation, error) {
	res, err := s.repo.Update(ctx, id, func(r *domain.Reservation) error {
		if err := r.Editable(); err != nil {
			return err
		}
		r.Notes = notes
		r.UpdatedAt = s.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, res)
}

// Confirm moves the reservation to CONFIRMADA once authorized and captured payments cover the total.
func (s *ReservationService) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	covered, err := s.coveredAmount(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err := s.repo.Update(ctx, id, func(r *domain.Reservation) error {
		return r.Confirm(covered, s.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation confirmed",
		logger.String("reservation_id", id),
		logger.String("covered", covered.StringFixed(2)),
	)
	return s.hydrate(ctx, res)
}

func (s *ReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.repo.Update(ctx, id, func(r *domain.Reservation) error {
		return r.Cancel(s.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation cancelled", logger.String("reservation_id", id))
	return s.hydrate(ctx, res)
}

// RecordProviderBooking stores the provider's booking id on a line after remote confirmation.
func (s *ReservationService) RecordProviderBooking(ctx context.Context, lineID, bookingID string) error {
	_, err := s.lines.Update(ctx, lineID, func(l *domain.ReservationLine) error {
		l.ProviderBookingID = bookingID
		return nil
	})
	return err
}

func (s *ReservationService) coveredAmount(ctx context.Context, id string) (decimal.Decimal, error) {
	payments, err := s.payments.ListByReservation(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	covered := decimal.Zero
	for _, p := range payments {
		if p.Covers() {
			covered = covered.Add(p.Amount)
		}
	}
	return covered, nil
}

func (s *ReservationService) editable(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = res.Editable(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) ownedLine(ctx context.Context, id, lineID string) (*domain.ReservationLine, error) {
	line, err := s.lines.GetByID(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if line.ReservationID != id {
		return nil, domain.ErrLineNotFound
	}
	return line, nil
}

// recompute sets the header total to the sum of the stored lines. s.mu must be held.
func (s *ReservationService) recompute(ctx context.Context, id string) (*domain.Reservation, error) {
	lines, err := s.lines.ListByReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	res, err := s.repo.Update(ctx, id, func(r *domain.Reservation) error {
		if err := r.Editable(); err != nil {
			return err
		}
		r.Recompute(lines)
		r.UpdatedAt = s.clock.Now()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recompute total: %w", err)
	}
	res.Lines = lines
	return res, nil
}

func (s *ReservationService) hydrate(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	lines, err := s.lines.ListByReservation(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	res.Lines = lines
	return res, nil
}

func (s *ReservationService) hydrateAll(ctx context.Context, items []*domain.Reservation) ([]*domain.Reservation, error) {
	for _, res := range items {
		if _, err := s.hydrate(ctx, res); err != nil {
			return nil, err
		}
	}
	return items, nil
}
