package rate

import (
	"fmt"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTierIsNotConstructed is returned when a Tier instance was not created
// through the NewTier or RestoreTier factory functions.
var ErrTierIsNotConstructed = errs.NewValueIsRequiredError(
	"tier must be created via NewTier or RestoreTier constructors")

// Tier maps a half-open distance interval [LowerLimit, UpperLimit) to a flat
// shipping price. The rate table partitions the distance domain into disjoint
// tiers, so for any distance at most one tier matches.
//
// Tier is static reference data: the order workflow never creates tiers, it
// only reads them.
type Tier struct { //nolint:recvcheck //using for validation
	id         kernel.ID
	lowerLimit float64
	upperLimit float64
	price      decimal.Decimal

	guard guard.ConstructorGuard
}

// NewTier creates a tier covering distances d with lowerLimit <= d < upperLimit.
// The lower limit must be non-negative, the upper limit strictly greater than
// the lower, and the price non-negative.
func NewTier(lowerLimit, upperLimit float64, price decimal.Decimal) (Tier, error) {
	tier := Tier{
		guard: guard.NewConstructorGuard(),
	}

	if lowerLimit < 0 {
		return Tier{}, errs.NewValueIsInvalidErrorWithCause("lowerLimit",
			fmt.Errorf("%v is negative", lowerLimit))
	}
	if upperLimit <= lowerLimit {
		return Tier{}, errs.NewValueIsInvalidErrorWithCause("upperLimit",
			fmt.Errorf("%v is not greater than the lower limit %v", upperLimit, lowerLimit))
	}
	if price.IsNegative() {
		return Tier{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}

	tier.lowerLimit = lowerLimit
	tier.upperLimit = upperLimit
	tier.price = price
	return tier, nil
}

// RestoreTier reconstructs a persisted tier with its store-assigned identifier.
// Used by persistence adapters when reading reference data back from storage.
func RestoreTier(id kernel.ID, lowerLimit, upperLimit float64, price decimal.Decimal) (Tier, error) {
	if err := id.Validate(); err != nil {
		return Tier{}, err
	}

	tier, err := NewTier(lowerLimit, upperLimit, price)
	if err != nil {
		return Tier{}, err
	}

	tier.id = id
	return tier, nil
}

// Validate ensures the Tier was created via one of its constructors.
func (t Tier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

// ID returns the tier's store-assigned identifier (zero for unsaved tiers).
func (t Tier) ID() kernel.ID {
	return t.id
}

// LowerLimit returns the inclusive lower bound of the tier interval.
func (t Tier) LowerLimit() float64 {
	return t.lowerLimit
}

// UpperLimit returns the exclusive upper bound of the tier interval.
func (t Tier) UpperLimit() float64 {
	return t.upperLimit
}

// Price returns the flat shipping price for distances within the tier.
func (t Tier) Price() decimal.Decimal {
	return t.price
}

// Covers reports whether the distance falls inside the tier's half-open interval.
func (t Tier) Covers(distance float64) bool {
	return t.lowerLimit <= distance && distance < t.upperLimit
}
