// Package httpgw talks to providers that expose the hub's JSON booking protocol over HTTP.
package httpgw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
)

const (
	defaultTimeout = 5 * time.Second
	maxBodyBytes   = 4 << 20
)

type Client struct {
	name    string
	baseURL string
	hc      *http.Client
}

// New returns a gateway for one provider endpoint. A zero timeout uses the default.
func New(name, endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		name:    name,
		baseURL: strings.TrimRight(endpoint, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

type faultBody struct {
	Fault *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"fault"`
}

type availabilityRequest struct {
	OfferingID string    `json:"offering_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Units      int       `json:"units"`
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

type quoteRequest struct {
	Items []domain.QuoteItem `json:"items"`
}

type holdRequest struct {
	Item        domain.QuoteItem `json:"item"`
	HoldMinutes int              `json:"hold_minutes"`
}

type holdResponse struct {
	HoldID string `json:"hold_id"`
}

type confirmRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type confirmResponse struct {
	BookingID string `json:"booking_id"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type cancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

func (c *Client) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.ServiceOffering, error) {
	var res []domain.ServiceOffering
	if err := c.call(ctx, http.MethodPost, "/search", filters, &res); err != nil {
		return nil, err
	}
	for i := range res {
		res[i].Provider = c.name
	}
	return res, nil
}

func (c *Client) GetDetail(ctx context.Context, id string) (domain.ServiceOffering, error) {
	var res domain.ServiceOffering
	if err := c.call(ctx, http.MethodGet, "/offerings/"+url.PathEscape(id), nil, &res); err != nil {
		return domain.ServiceOffering{}, err
	}
	res.Provider = c.name
	return res, nil
}

func (c *Client) CheckAvailability(ctx context.Context, id string, start, end time.Time, units int) (bool, error) {
	req := availabilityRequest{OfferingID: id, StartDate: start, EndDate: end, Units: units}
	var res availabilityResponse
	if err := c.call(ctx, http.MethodPost, "/availability", req, &res); err != nil {
		return false, err
	}
	return res.Available, nil
}

func (c *Client) Quote(ctx context.Context, items []domain.QuoteItem) (domain.Quotation, error) {
	var res domain.Quotation
	if err := c.call(ctx, http.MethodPost, "/quote", quoteRequest{Items: items}, &res); err != nil {
		return domain.Quotation{}, err
	}
	res.Provider = c.name
	return res, nil
}

func (c *Client) CreateHold(ctx context.Context, item domain.QuoteItem, holdMinutes int) (string, error) {
	var res holdResponse
	if err := c.call(ctx, http.MethodPost, "/holds", holdRequest{Item: item, HoldMinutes: holdMinutes}, &res); err != nil {
		return "", err
	}
	if res.HoldID == "" {
		return "", &domain.RemoteFaultError{Provider: c.name, Code: "empty_hold_id", Message: "provider returned no hold id"}
	}
	return res.HoldID, nil
}

func (c *Client) Confirm(ctx context.Context, holdID, paymentMethod string) (string, error) {
	var res confirmResponse
	path := "/holds/" + url.PathEscape(holdID) + "/confirm"
	if err := c.call(ctx, http.MethodPost, path, confirmRequest{PaymentMethod: paymentMethod}, &res); err != nil {
		return "", err
	}
	if res.BookingID == "" {
		return "", &domain.RemoteFaultError{Provider: c.name, Code: "empty_booking_id", Message: "provider returned no booking id"}
	}
	return res.BookingID, nil
}

func (c *Client) Cancel(ctx context.Context, bookingID, reason string) (bool, error) {
	var res cancelResponse
	path := "/bookings/" + url.PathEscape(bookingID) + "/cancel"
	if err := c.call(ctx, http.MethodPost, path, cancelRequest{Reason: reason}, &res); err != nil {
		return false, err
	}
	return res.Cancelled, nil
}

// call sends one JSON request and decodes the response into out.
func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	status, body, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}

	if status >= 200 && status < 300 {
		if out == nil || len(body) == 0 {
			return nil
		}
		if err = json.Unmarshal(body, out); err != nil {
			return &domain.RemoteFaultError{Provider: c.name, Code: "bad_response", Message: err.Error()}
		}
		return nil
	}

	var fb faultBody
	if json.Unmarshal(body, &fb) == nil && fb.Fault != nil {
		return &domain.RemoteFaultError{Provider: c.name, Code: fb.Fault.Code, Message: fb.Fault.Message}
	}
	if status >= 500 {
		return fmt.Errorf("%w: %s %s %s returned %d", domain.ErrRemoteUnavailable, c.name, method, path, status)
	}
	return &domain.RemoteFaultError{Provider: c.name, Code: http.StatusText(status), Message: strings.TrimSpace(string(body))}
}

func (c *Client) do(ctx context.Context, method, path string, in any) (int, []byte, error) {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: encode request: %v", domain.ErrValidation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: build request: %v", domain.ErrValidation, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0, nil, err
		}
		return 0, nil, fmt.Errorf("%w: %s: %v", domain.ErrRemoteUnavailable, c.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s: read body: %v", domain.ErrRemoteUnavailable, c.name, err)
	}
	if len(body) > maxBodyBytes {
		return 0, nil, fmt.Errorf("%w: %s: response larger than %d bytes", domain.ErrRemoteUnavailable, c.name, maxBodyBytes)
	}
	return resp.StatusCode, body, nil
}
