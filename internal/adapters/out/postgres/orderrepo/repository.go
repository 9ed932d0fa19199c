package orderrepo

import (
	"context"
	"errors"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/order"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and returns the identifier assigned by the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (kernel.ID, error) {
	if err := aggregate.Validate(); err != nil {
		return kernel.ID(0), err
	}
	if aggregate.ID().IsAssigned() {
		return kernel.ID(0), errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("order is already persisted"))
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID(0), err
	}

	id := kernel.ID(dto.ID)
	r.tracker.TrackAggregate(id, aggregate)
	return id, nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
