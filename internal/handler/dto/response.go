package dto

import (
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/orchestrator"
)

type OfferingResponse struct {
	ID        string   `json:"id"`
	Provider  string   `json:"provider"`
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	City      string   `json:"city"`
	UnitPrice string   `json:"unit_price"`
	Currency  string   `json:"currency"`
	Rating    float64  `json:"rating"`
	Amenities []string `json:"amenities,omitempty"`
	Available bool     `json:"available"`
	FetchedAt string   `json:"fetched_at"`
}

type SearchResponse struct {
	Offerings          []OfferingResponse `json:"offerings"`
	ProvidersTotal     int                `json:"providers_total"`
	ProvidersSucceeded int                `json:"providers_succeeded"`
	ProvidersFailed    []string           `json:"providers_failed,omitempty"`
}

type DetailResponse struct {
	Offering  OfferingResponse `json:"offering"`
	FromCache bool             `json:"from_cache"`
}

type QuoteResponse struct {
	Provider   string         `json:"provider"`
	Lines      []LineResponse `json:"lines"`
	Total      string         `json:"total"`
	Currency   string         `json:"currency"`
	ValidUntil string         `json:"valid_until"`
}

type LineResponse struct {
	ID                string `json:"id,omitempty"`
	ServiceType       string `json:"service_type"`
	OfferingID        string `json:"offering_id"`
	Provider          string `json:"provider,omitempty"`
	Quantity          int    `json:"quantity"`
	UnitPrice         string `json:"unit_price"`
	Subtotal          string `json:"subtotal"`
	StartDate         string `json:"start_date,omitempty"`
	EndDate           string `json:"end_date,omitempty"`
	Legs              int    `json:"legs,omitempty"`
	ProviderBookingID string `json:"provider_booking_id,omitempty"`
}

type HoldResponse struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	State         string         `json:"state"`
	Total         string         `json:"total"`
	Currency      string         `json:"currency"`
	HoldMinutes   int            `json:"hold_minutes"`
	ExpiresAt     string         `json:"expires_at"`
	ReservationID string         `json:"reservation_id,omitempty"`
	Itinerary     []LineResponse `json:"itinerary"`
	CreatedAt     string         `json:"created_at"`
}

type ReservationResponse struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	PreReservationID string         `json:"pre_reservation_id,omitempty"`
	State            string         `json:"state"`
	Total            string         `json:"total"`
	Currency         string         `json:"currency"`
	Notes            string         `json:"notes,omitempty"`
	Lines            []LineResponse `json:"lines"`
	CreatedAt        string         `json:"created_at"`
}

type CancelResponse struct {
	Cancelled   bool                           `json:"cancelled"`
	Reservation *ReservationResponse           `json:"reservation,omitempty"`
	Providers   []orchestrator.ProviderOutcome `json:"providers"`
}

type PaymentResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Method        string `json:"method"`
	State         string `json:"state"`
	TransactionID string `json:"transaction_id,omitempty"`
	FailureCode   string `json:"failure_code,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	Active         bool   `json:"active"`
	RegisteredAt   string `json:"registered_at"`
}

type ExpireResponse struct {
	Expired int `json:"expired"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToOfferingResponse(o domain.ServiceOffering) OfferingResponse {
	return OfferingResponse{
		ID:        o.ID,
		Provider:  o.Provider,
		Type:      string(o.Type),
		Name:      o.Name,
		City:      o.City,
		UnitPrice: o.UnitPrice.StringFixed(2),
		Currency:  o.Currency,
		Rating:    o.Rating,
		Amenities: o.Amenities,
		Available: o.Available,
		FetchedAt: o.FetchedAt.Format(time.RFC3339),
	}
}

func ToSearchResponse(r *orchestrator.SearchResult) SearchResponse {
	offerings := make([]OfferingResponse, 0, len(r.Offerings))
	for _, o := range r.Offerings {
		offerings = append(offerings, ToOfferingResponse(o))
	}
	return SearchResponse{
		Offerings:          offerings,
		ProvidersTotal:     r.ProvidersTotal,
		ProvidersSucceeded: r.ProvidersSucceeded,
		ProvidersFailed:    r.ProvidersFailed,
	}
}

func ToDetailResponse(d *orchestrator.Detail) DetailResponse {
	return DetailResponse{Offering: ToOfferingResponse(d.Offering), FromCache: d.FromCache}
}

func ToQuoteResponse(q *domain.Quotation) QuoteResponse {
	lines := make([]LineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, LineResponse{
			ServiceType: string(l.ServiceType),
			OfferingID:  l.OfferingID,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Subtotal:    l.Subtotal.StringFixed(2),
		})
	}
	return QuoteResponse{
		Provider:   q.Provider,
		Lines:      lines,
		Total:      q.Total.StringFixed(2),
		Currency:   q.Currency,
		ValidUntil: q.ValidUntil.Format(time.RFC3339),
	}
}

func ToLineResponse(l domain.ReservationLine) LineResponse {
	return LineResponse{
		ID:                l.ID,
		ServiceType:       string(l.ServiceType),
		OfferingID:        l.OfferingID,
		Provider:          l.Provider,
		Quantity:          l.Quantity,
		UnitPrice:         l.UnitPrice.StringFixed(2),
		Subtotal:          l.Subtotal.StringFixed(2),
		StartDate:         formatOptional(l.StartDate),
		EndDate:           formatOptional(l.EndDate),
		Legs:              l.Legs,
		ProviderBookingID: l.ProviderBookingID,
	}
}

func toLines(lines []domain.ReservationLine) []LineResponse {
	resp := make([]LineResponse, 0, len(lines))
	for _, l := range lines {
		resp = append(resp, ToLineResponse(l))
	}
	return resp
}

func ToHoldResponse(h *domain.PreReservation) HoldResponse {
	return HoldResponse{
		ID:            h.ID,
		UserID:        h.Customer.UserID,
		State:         string(h.State),
		Total:         h.Total.StringFixed(2),
		Currency:      h.Currency,
		HoldMinutes:   h.HoldMinutes,
		ExpiresAt:     h.ExpiresAt.Format(time.RFC3339),
		ReservationID: h.ReservationID,
		Itinerary:     toLines(h.Itinerary),
		CreatedAt:     h.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		PreReservationID: r.PreReservationID,
		State:            string(r.State),
		Total:            r.Total.StringFixed(2),
		Currency:         r.Currency,
		Notes:            r.Notes,
		Lines:            toLines(r.Lines),
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}

func ToCancelResponse(r *orchestrator.CancelResult) CancelResponse {
	resp := CancelResponse{Cancelled: r.Cancelled, Providers: r.Providers}
	if resp.Providers == nil {
		resp.Providers = []orchestrator.ProviderOutcome{}
	}
	if r.Reservation != nil {
		res := ToReservationResponse(r.Reservation)
		resp.Reservation = &res
	}
	return resp
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount.StringFixed(2),
		Currency:      p.Currency,
		Method:        p.Method,
		State:         string(p.State),
		TransactionID: p.TransactionID,
		FailureCode:   p.FailureCode,
		FailureReason: p.FailureReason,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Phone:          u.Phone,
		TelegramChatID: u.TelegramChatID,
		Active:         u.Active,
		RegisteredAt:   u.RegisteredAt.Format(time.RFC3339),
	}
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
