package queries

import (
	"errors"
	"fmt"
	"math"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrQuoteRateQueryIsNotConstructed = errors.New(
		"QuoteRateQuery must be created via NewQuoteRateQuery or NewQuoteRateQueryForDistance constructor",
	)
)

// QuoteRateQuery asks the rate table for a shipping price.
// With a distance it returns every tier covering that distance (at most one
// when the table is well-formed); without one it returns the whole table.
//
// Example:
//
//	query, err := NewQuoteRateQueryForDistance(120)
//	if err != nil {
//	    return err
//	}
//	tiers, err := handler.Handle(ctx, query)
type QuoteRateQuery struct {
	distance *float64

	guard guard.ConstructorGuard
}

// NewQuoteRateQuery creates a query for the full ordered rate table.
func NewQuoteRateQuery() QuoteRateQuery {
	return QuoteRateQuery{guard: guard.NewConstructorGuard()}
}

// NewQuoteRateQueryForDistance creates a query matching tiers against a distance.
// The distance must be a finite number; the caller is responsible for having
// parsed it from its textual form already.
func NewQuoteRateQueryForDistance(distance float64) (QuoteRateQuery, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return QuoteRateQuery{}, errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%v is not a finite number", distance))
	}

	return QuoteRateQuery{
		distance: &distance,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q QuoteRateQuery) Validate() error {
	return q.guard.Validate(ErrQuoteRateQueryIsNotConstructed)
}

// Distance returns the distance to match, or nil for the full table.
func (q QuoteRateQuery) Distance() *float64 {
	return q.distance
}

// QuoteRateQueryResponse is one rate tier as returned to the caller.
type QuoteRateQueryResponse struct {
	ID         kernel.ID
	LowerLimit float64
	UpperLimit float64
	Price      decimal.Decimal
}
