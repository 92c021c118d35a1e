package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/handler/dto"
	"github.com/klimatr26/booking-hub/internal/orchestrator"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Search(ctx context.Context, req orchestrator.SearchRequest) (*orchestrator.SearchResult, error)
	GetDetail(ctx context.Context, providerName, id string) (*orchestrator.Detail, error)
	CheckAvailability(ctx context.Context, providerName, id string, start, end time.Time, units int) (bool, error)
	Quote(ctx context.Context, providerName string, items []domain.QuoteItem) (*domain.Quotation, error)
	CreateHold(ctx context.Context, req domain.HoldRequest) (*domain.PreReservation, bool, error)
	GetHold(ctx context.Context, id string) (*domain.PreReservation, error)
	Confirm(ctx context.Context, holdID, paymentMethod string) (*domain.Reservation, error)
	ExpireHolds(ctx context.Context) ([]*domain.PreReservation, error)
	CancelReservation(ctx context.Context, id, reason string) (*orchestrator.CancelResult, error)
}

type ReservationSvc interface {
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	AddLine(ctx context.Context, id string, line domain.ReservationLine) (*domain.Reservation, error)
	RemoveLine(ctx context.Context, id, lineID string) (*domain.Reservation, error)
}

type PaymentSvc interface {
	Pay(ctx context.Context, input domain.PayInput) (*domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID string) ([]*domain.Payment, error)
	Capture(ctx context.Context, id string) (*domain.Payment, error)
	Refund(ctx context.Context, id string) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

const idempotencyHeader = "Idempotency-Key"

type Handler struct {
	bookingService     BookingSvc
	reservationService ReservationSvc
	paymentService     PaymentSvc
	userService        UserSvc
}

func NewHandler(bookingService BookingSvc, reservationService ReservationSvc, paymentService PaymentSvc, userService UserSvc) *Handler {
	return &Handler{
		bookingService:     bookingService,
		reservationService: reservationService,
		paymentService:     paymentService,
		userService:        userService,
	}
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Email:          req.Email,
		Name:           req.Name,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, domain.UpdateUserInput{
		Email:          req.Email,
		Name:           req.Name,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInsufficientPayment),
		errors.Is(err, domain.ErrIdempotencyConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRemoteUnavailable),
		errors.Is(err, domain.ErrProviderDisabled):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRemoteFault):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// pathID reads a uuid path parameter and answers 400 when it is malformed.
func pathID(c *ginext.Context, param, entity string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + entity + " id"})
		return "", false
	}
	return id, true
}

func parseDate(raw, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.New("invalid " + field + " format, expected RFC3339")
	}
	return &t, nil
}
