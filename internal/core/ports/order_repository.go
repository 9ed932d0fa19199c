package ports

import (
	"context"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and returns its store-assigned identifier.
	// The order must be valid and its party references must point at
	// parties written within the same transaction.
	Add(ctx context.Context, aggregate *order.Order) (kernel.ID, error)

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}
