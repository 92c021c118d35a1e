package dto

import "github.com/shopspring/decimal"

type SearchRequest struct {
	Types     []string        `json:"types"`
	City      string          `json:"city"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Units     int             `json:"units" binding:"gte=0"`
	MaxPrice  decimal.Decimal `json:"max_price"`
	MinRating float64         `json:"min_rating" binding:"gte=0,lte=5"`
}

type AvailabilityRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Units     int    `json:"units" binding:"required,gt=0"`
}

type QuoteRequest struct {
	Items []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

type ItemRequest struct {
	Provider   string `json:"provider"`
	OfferingID string `json:"offering_id" binding:"required"`
	Type       string `json:"type"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Legs       int    `json:"legs" binding:"gte=0"`
}

type CreateHoldRequest struct {
	UserID      string        `json:"user_id" binding:"required"`
	Items       []ItemRequest `json:"items" binding:"required,min=1,dive"`
	HoldMinutes *int          `json:"hold_minutes"`
}

type ConfirmHoldRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

type AddLineRequest struct {
	ItemRequest
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type PayRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Method   string          `json:"method" binding:"required"`
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type UpdateUserRequest struct {
	Email          *string `json:"email"`
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}
