package ports

import (
	"context"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/order"
)

// LineItemRepository defines the persistence contract for order line items.
// Line items are only ever written as the complete set belonging to one
// order, inside the same transaction that creates the order itself; a
// partial set must never become visible.
type LineItemRepository interface {
	// AddBatch persists every line item in the slice for the given order.
	// Either the whole batch is written or the call fails; callers run it
	// inside the order-creation transaction so a failure rolls back the
	// order and its parties as well.
	AddBatch(ctx context.Context, orderID kernel.ID, items []*order.LineItem) error

	// GetByOrder retrieves all line items belonging to an order,
	// in stable insertion order.
	GetByOrder(ctx context.Context, orderID kernel.ID) ([]*order.LineItem, error)
}
