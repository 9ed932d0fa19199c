package lineitemrepo

import (
	"context"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/order"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLineItemRepository implements LineItemRepository using GORM.
type GormLineItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormLineItemRepository creates a new GORM line item repository.
func NewGormLineItemRepository(db *gorm.DB, tracker aggregateTracker) *GormLineItemRepository {
	return &GormLineItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddBatch persists all line items for an order in a single insert.
// The caller runs this inside the order-creation transaction, so a failure
// here rolls back the order and its parties too.
func (r *GormLineItemRepository) AddBatch(ctx context.Context, orderID kernel.ID, items []*order.LineItem) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	dtos := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(orderID, item))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for i, item := range items {
		r.tracker.TrackAggregate(kernel.ID(dtos[i].ID), item)
	}
	return nil
}

// GetByOrder retrieves all line items belonging to an order in insertion order.
func (r *GormLineItemRepository) GetByOrder(ctx context.Context, orderID kernel.ID) ([]*order.LineItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "order_id = ?", orderID.Int64()).Error; err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
