package partyrepo

import (
	"context"
	"errors"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/party"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartyRepository implements PartyRepository using GORM.
type GormPartyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormPartyRepository creates a new GORM party repository.
func NewGormPartyRepository(db *gorm.DB, tracker aggregateTracker) *GormPartyRepository {
	return &GormPartyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new party and returns the identifier assigned by the database.
func (r *GormPartyRepository) Add(ctx context.Context, aggregate *party.Party) (kernel.ID, error) {
	if err := aggregate.Validate(); err != nil {
		return kernel.ID(0), err
	}
	if aggregate.ID().IsAssigned() {
		return kernel.ID(0), errs.NewValueIsInvalidErrorWithCause("party",
			errors.New("party is already persisted"))
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID(0), err
	}

	id := kernel.ID(dto.ID)
	r.tracker.TrackAggregate(id, aggregate)
	return id, nil
}

// Get retrieves a party by ID.
func (r *GormPartyRepository) Get(ctx context.Context, id kernel.ID) (*party.Party, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("party", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
