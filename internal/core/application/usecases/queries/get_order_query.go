package queries

import (
	"errors"
	"time"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery fetches a single order with its parties and line items.
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// PartyResponse is one consignor or consignee attached to an order.
type PartyResponse struct {
	ID          kernel.ID
	Role        string
	Name        string
	Phone       string
	AddressLine string
	City        string
	PostalCode  string
}

// LineItemResponse is one product row of an order.
type LineItemResponse struct {
	ID    kernel.ID
	Name  string
	Price int64
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID               kernel.ID
	TrackingCode     uuid.UUID
	PaymentMethod    string
	ProductPreview   string
	Note             string
	EstimateDistance float64
	ShippingPrice    decimal.Decimal
	DateCreated      time.Time
	Sender           PartyResponse
	Receiver         PartyResponse
	LineItems        []LineItemResponse
}
