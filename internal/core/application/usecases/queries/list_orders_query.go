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
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery or NewListOrdersQueryForOwner constructor",
	)
)

// ListOrdersQuery lists orders newest first. The unscoped form returns every
// order; the owner form returns only orders whose consignor belongs to the
// given account.
type ListOrdersQuery struct {
	ownerAccountID *kernel.ID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query over all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListOrdersQueryForOwner creates a query scoped to one account's orders.
func NewListOrdersQueryForOwner(ownerAccountID kernel.ID) (ListOrdersQuery, error) {
	if err := ownerAccountID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		ownerAccountID: &ownerAccountID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) OwnerAccountID() *kernel.ID {
	return q.ownerAccountID
}

// ListOrdersQueryResponse is one order row in the listing.
type ListOrdersQueryResponse struct {
	ID               kernel.ID
	TrackingCode     uuid.UUID
	PaymentMethod    string
	ProductPreview   string
	EstimateDistance float64
	ShippingPrice    decimal.Decimal
	DateCreated      time.Time
	SenderID         kernel.ID
	ReceiverID       kernel.ID
}
