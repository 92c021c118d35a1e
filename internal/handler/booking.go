package handler

import (
	"net/http"
	"strings"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/handler/dto"
	"github.com/klimatr26/booking-hub/internal/orchestrator"
	"github.com/wb-go/wbf/ginext"
)

// Catalog

func (h *Handler) Search(c *ginext.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	search := orchestrator.SearchRequest{
		Filters: domain.SearchFilters{
			City:      req.City,
			StartDate: start,
			EndDate:   end,
			Units:     req.Units,
			MaxPrice:  req.MaxPrice,
			MinRating: req.MinRating,
		},
	}
	for _, t := range req.Types {
		search.Types = append(search.Types, domain.ServiceType(strings.ToLower(t)))
	}

	res, err := h.bookingService.Search(c.Request.Context(), search)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResponse(res))
}

func (h *Handler) GetOffering(c *ginext.Context) {
	detail, err := h.bookingService.GetDetail(c.Request.Context(), c.Param("provider"), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDetailResponse(detail))
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	available, err := h.bookingService.CheckAvailability(c.Request.Context(),
		c.Param("provider"), c.Param("id"), *start, *end, req.Units)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"available": available})
}

func (h *Handler) Quote(c *ginext.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	items := make([]domain.QuoteItem, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := toHoldItem(it)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		items = append(items, domain.QuoteItem{
			OfferingID: item.OfferingID,
			Quantity:   item.Quantity,
			StartDate:  item.StartDate,
			EndDate:    item.EndDate,
			Legs:       item.Legs,
		})
	}

	q, err := h.bookingService.Quote(c.Request.Context(), c.Param("provider"), items)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(q))
}

// Holds

func (h *Handler) CreateHold(c *ginext.Context) {
	var req dto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.HoldRequest{
		UserID:         req.UserID,
		HoldMinutes:    req.HoldMinutes,
		IdempotencyKey: strings.TrimSpace(c.GetHeader(idempotencyHeader)),
	}
	for _, it := range req.Items {
		item, err := toHoldItem(it)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		input.Items = append(input.Items, item)
	}

	hold, replayed, err := h.bookingService.CreateHold(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if replayed {
		c.Header("Idempotent-Replayed", "true")
		c.JSON(http.StatusOK, dto.ToHoldResponse(hold))
		return
	}
	c.JSON(http.StatusCreated, dto.ToHoldResponse(hold))
}

func (h *Handler) GetHold(c *ginext.Context) {
	id, ok := pathID(c, "id", "hold")
	if !ok {
		return
	}

	hold, err := h.bookingService.GetHold(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHoldResponse(hold))
}

func (h *Handler) ConfirmHold(c *ginext.Context) {
	id, ok := pathID(c, "id", "hold")
	if !ok {
		return
	}

	var req dto.ConfirmHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.bookingService.Confirm(c.Request.Context(), id, req.PaymentMethod)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) ExpireHolds(c *ginext.Context) {
	expired, err := h.bookingService.ExpireHolds(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExpireResponse{Expired: len(expired)})
}

// Reservations

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := pathID(c, "id", "reservation")
	if !ok {
		return
	}

	res, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id, ok := pathID(c, "id", "reservation")
	if !ok {
		return
	}

	var req dto.CancelReservationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	res, err := h.bookingService.CancelReservation(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !res.Cancelled {
		c.JSON(http.StatusBadGateway, dto.ToCancelResponse(res))
		return
	}
	c.JSON(http.StatusOK, dto.ToCancelResponse(res))
}

func (h *Handler) AddReservationLine(c *ginext.Context) {
	id, ok := pathID(c, "id", "reservation")
	if !ok {
		return
	}

	var req dto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := toHoldItem(req.ItemRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.reservationService.AddLine(c.Request.Context(), id, domain.ReservationLine{
		ServiceType: item.Type,
		OfferingID:  item.OfferingID,
		Provider:    item.Provider,
		Quantity:    item.Quantity,
		UnitPrice:   req.UnitPrice,
		StartDate:   item.StartDate,
		EndDate:     item.EndDate,
		Legs:        item.Legs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) RemoveReservationLine(c *ginext.Context) {
	id, ok := pathID(c, "id", "reservation")
	if !ok {
		return
	}
	lineID, ok := pathID(c, "line_id", "line")
	if !ok {
		return
	}

	res, err := h.reservationService.RemoveLine(c.Request.Context(), id, lineID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

// Payments

func (h *Handler) ListPayments(c *ginext.Context) {
	id, ok := pathID(c, "id", "reservation")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListByReservation(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.ToPaymentResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Pay(c *ginext.Context) {
	id, ok := pathID(c, "id", "reservation")
	if !ok {
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.paymentService.Pay(c.Request.Context(), domain.PayInput{
		ReservationID: id,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Method:        req.Method,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(p))
}

func (h *Handler) CapturePayment(c *ginext.Context) {
	id, ok := pathID(c, "id", "payment")
	if !ok {
		return
	}

	p, err := h.paymentService.Capture(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}

func (h *Handler) RefundPayment(c *ginext.Context) {
	id, ok := pathID(c, "id", "payment")
	if !ok {
		return
	}

	p, err := h.paymentService.Refund(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(p))
}

func (h *Handler) DeletePayment(c *ginext.Context) {
	id, ok := pathID(c, "id", "payment")
	if !ok {
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toHoldItem(req dto.ItemRequest) (domain.HoldItem, error) {
	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return domain.HoldItem{}, err
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		return domain.HoldItem{}, err
	}
	return domain.HoldItem{
		Provider:   req.Provider,
		OfferingID: req.OfferingID,
		Quantity:   req.Quantity,
		StartDate:  start,
		EndDate:    end,
		Legs:       req.Legs,
		Type:       domain.ServiceType(strings.ToLower(req.Type)),
	}, nil
}
