package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type ServiceType string

const (
	ServiceHotel      ServiceType = "hotel"
	ServiceCar        ServiceType = "car"
	ServiceFlight     ServiceType = "flight"
	ServiceRestaurant ServiceType = "restaurant"
	ServicePackage    ServiceType = "package"
)

var ServiceTypes = []ServiceType{ServiceHotel, ServiceCar, ServiceFlight, ServiceRestaurant, ServicePackage}

func (t ServiceType) Valid() bool {
	for _, st := range ServiceTypes {
		if st == t {
			return true
		}
	}
	return false
}

// ServiceOffering is a provider-agnostic bookable item.
type ServiceOffering struct {
	ID        string          `json:"id"`
	Provider  string          `json:"provider"`
	Type      ServiceType     `json:"type"`
	Name      string          `json:"name"`
	City      string          `json:"city"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
	Rating    float64         `json:"rating"`
	Amenities []string        `json:"amenities,omitempty"`
	Available bool            `json:"available"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	FetchedAt time.Time       `json:"fetched_at"`
}

func (o ServiceOffering) Key() string { return o.ID }

func (o ServiceOffering) WithKey(id string) ServiceOffering {
	o.ID = id
	return o
}

// SearchFilters are the criteria forwarded to every provider in a fan-out search.
type SearchFilters struct {
	City      string          `json:"city,omitempty"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
	Units     int             `json:"units,omitempty"`
	MaxPrice  decimal.Decimal `json:"max_price"`
	MinRating float64         `json:"min_rating,omitempty"`
}

// QuoteItem asks a provider to price one offering.
type QuoteItem struct {
	OfferingID string     `json:"offering_id"`
	Quantity   int        `json:"quantity"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Legs       int        `json:"legs,omitempty"`
}

type QuotedLine struct {
	OfferingID  string          `json:"offering_id"`
	ServiceType ServiceType     `json:"service_type"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Quotation is a provider's price for a set of items.
type Quotation struct {
	Provider   string          `json:"provider"`
	Lines      []QuotedLine    `json:"lines"`
	Total      decimal.Decimal `json:"total"`
	Currency   string          `json:"currency"`
	ValidUntil time.Time       `json:"valid_until"`
}
