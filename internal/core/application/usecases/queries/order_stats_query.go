package queries

import (
	"errors"
	"time"

	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderStatsQueryIsNotConstructed = errors.New(
		"OrderStatsQuery must be created via NewOrderStatsQuery constructor",
	)
)

// OrderStatsQuery summarizes orders created since a point in time.
type OrderStatsQuery struct {
	since time.Time

	guard guard.ConstructorGuard
}

func NewOrderStatsQuery(since time.Time) (OrderStatsQuery, error) {
	if since.IsZero() {
		return OrderStatsQuery{}, errs.NewValueIsRequiredError("since")
	}

	return OrderStatsQuery{
		since: since,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q OrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrOrderStatsQueryIsNotConstructed)
}

func (q OrderStatsQuery) Since() time.Time {
	return q.since
}

// OrderStatsQueryResponse holds the order count and shipping revenue
// accumulated since the query's lower bound.
type OrderStatsQueryResponse struct {
	Count              int64
	TotalShippingPrice decimal.Decimal
}
