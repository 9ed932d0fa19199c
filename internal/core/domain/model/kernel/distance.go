package kernel

import (
	"fmt"
	"math"

	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/guard"
)

// ErrDistanceIsNotConstructed is returned when validating a zero-value Distance
// that bypassed the NewDistance constructor.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"distance must be created via NewDistance constructor")

// Distance is a shipment distance in kilometers.
// It is an immutable value object; a valid distance is a finite,
// non-negative number.
//
// Example:
//
//	d, err := kernel.NewDistance(120.5)
//	if err != nil {
//	    // negative, NaN and infinite values fail here
//	}
type Distance struct {
	kilometers float64
	guard      guard.ConstructorGuard
}

// NewDistance creates a Distance from a kilometer value.
// Returns an error for negative, NaN or infinite values.
func NewDistance(kilometers float64) (Distance, error) {
	if math.IsNaN(kilometers) || math.IsInf(kilometers, 0) {
		return Distance{}, errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%v is not a finite number", kilometers))
	}
	if kilometers < 0 {
		return Distance{}, errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%v is negative", kilometers))
	}

	return Distance{
		kilometers: kilometers,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Distance was created via NewDistance.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Kilometers returns the raw distance value.
func (d Distance) Kilometers() float64 {
	return d.kilometers
}

// IsEqual compares two distances by value.
func (d Distance) IsEqual(other Distance) bool {
	return d.kilometers == other.kilometers
}
