package raterepo

import (
	"context"
	"errors"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/rate"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRateTierRepository implements rate tier persistence using GORM.
// The rate table is administered out of band; the application only reads it,
// apart from seeding defaults into an empty table on startup.
type GormRateTierRepository struct {
	db *gorm.DB
}

// NewGormRateTierRepository creates a new GORM rate tier repository.
func NewGormRateTierRepository(db *gorm.DB) *GormRateTierRepository {
	return &GormRateTierRepository{db: db}
}

// Add saves a new rate tier and returns the identifier assigned by the database.
func (r *GormRateTierRepository) Add(ctx context.Context, tier rate.Tier) (kernel.ID, error) {
	if err := tier.Validate(); err != nil {
		return kernel.ID(0), err
	}

	dto := fromDomain(tier)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID(0), err
	}

	return kernel.ID(dto.ID), nil
}

// Get retrieves a rate tier by ID.
func (r *GormRateTierRepository) Get(ctx context.Context, id kernel.ID) (rate.Tier, error) {
	if err := id.Validate(); err != nil {
		return rate.Tier{}, err
	}

	var dto RateTierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rate.Tier{}, errs.NewObjectNotFoundError("rate tier", id.String())
		}
		return rate.Tier{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves every rate tier ordered by lower limit.
func (r *GormRateTierRepository) GetAll(ctx context.Context) ([]rate.Tier, error) {
	var dtos []RateTierDTO
	if err := r.db.WithContext(ctx).Order("lower_limit").Find(&dtos).Error; err != nil {
		return nil, err
	}

	tiers := make([]rate.Tier, 0, len(dtos))
	for _, dto := range dtos {
		tier, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}

	return tiers, nil
}

// Seed inserts the given tiers when the rate table is empty.
// An already populated table is left untouched.
func (r *GormRateTierRepository) Seed(ctx context.Context, tiers []rate.Tier) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RateTierDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, tier := range tiers {
		if _, err := r.Add(ctx, tier); err != nil {
			return err
		}
	}
	return nil
}
