// Package raterepo provides data transfer objects and mapping functions for
// the distance-tiered rate table used to price shipments.
package raterepo

import (
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/rate"

	"github.com/shopspring/decimal"
)

// RateTierDTO represents the database structure for persisting rate tiers.
// A tier covers distances in the half-open range [lower_limit, upper_limit).
type RateTierDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	LowerLimit float64         `gorm:"type:double precision;index"`
	UpperLimit float64         `gorm:"type:double precision"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming convention to use "rate_tiers".
func (RateTierDTO) TableName() string {
	return "rate_tiers"
}

func fromDomain(tier rate.Tier) RateTierDTO {
	return RateTierDTO{
		ID:         tier.ID().Int64(),
		LowerLimit: tier.LowerLimit(),
		UpperLimit: tier.UpperLimit(),
		Price:      tier.Price(),
	}
}

func toDomain(dto RateTierDTO) (rate.Tier, error) {
	return rate.RestoreTier(kernel.ID(dto.ID), dto.LowerLimit, dto.UpperLimit, dto.Price)
}
