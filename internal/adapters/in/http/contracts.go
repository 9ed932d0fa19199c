package http

import (
	"encoding/json"
	"time"
)

// ErrorResponse is the uniform error body returned by the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries per-field validation messages for both
// parties of a rejected order-creation request.
type ValidationErrorResponse struct {
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	Consignor map[string]string `json:"consignor,omitempty"`
	Consignee map[string]string `json:"consignee,omitempty"`
}

// RawPrice accepts a JSON number or a JSON string and keeps the textual
// form. Coercion to an integer amount happens in the domain, so "12",
// 12 and "12.0" are all carried through unchanged.
type RawPrice string

func (p *RawPrice) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = RawPrice(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = RawPrice(n.String())
	return nil
}

// PartyContact is the submitted contact block for a consignor or consignee.
type PartyContact struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
}

// ProductLine is one submitted product row of an order.
type ProductLine struct {
	Name  string   `json:"name"`
	Price RawPrice `json:"price"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Consignor        PartyContact  `json:"consignor"`
	Consignee        PartyContact  `json:"consignee"`
	PaymentMethod    string        `json:"paymentMethod"`
	ProductPreview   string        `json:"productPreview"`
	Note             string        `json:"note"`
	EstimateDistance float64       `json:"estimateDistance"`
	ShippingPrice    RawPrice      `json:"shippingPrice"`
	Products         []ProductLine `json:"products"`
}

// CreateOrderResponse confirms a created order.
type CreateOrderResponse struct {
	OrderID      int64  `json:"orderId"`
	TrackingCode string `json:"trackingCode"`
}

// RateTierResponse is one rate table row.
type RateTierResponse struct {
	ID         int64   `json:"id"`
	LowerLimit float64 `json:"lowerLimit"`
	UpperLimit float64 `json:"upperLimit"`
	Price      string  `json:"price"`
}

// PartyDetails is a persisted party as returned in order detail responses.
type PartyDetails struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode,omitempty"`
}

// LineItemDetails is one persisted product row of an order.
type LineItemDetails struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// OrderDetails is the full order returned by GET /api/v1/orders/:id.
type OrderDetails struct {
	ID               int64             `json:"id"`
	TrackingCode     string            `json:"trackingCode"`
	PaymentMethod    string            `json:"paymentMethod"`
	ProductPreview   string            `json:"productPreview"`
	Note             string            `json:"note,omitempty"`
	EstimateDistance float64           `json:"estimateDistance"`
	ShippingPrice    string            `json:"shippingPrice"`
	DateCreated      time.Time         `json:"dateCreated"`
	Consignor        PartyDetails      `json:"consignor"`
	Consignee        PartyDetails      `json:"consignee"`
	Products         []LineItemDetails `json:"products"`
}

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID               int64     `json:"id"`
	TrackingCode     string    `json:"trackingCode"`
	PaymentMethod    string    `json:"paymentMethod"`
	ProductPreview   string    `json:"productPreview"`
	EstimateDistance float64   `json:"estimateDistance"`
	ShippingPrice    string    `json:"shippingPrice"`
	DateCreated      time.Time `json:"dateCreated"`
}
