package queries

import (
	"context"

	"gorm.io/gorm"
)

// QuoteRateQueryHandler resolves shipping prices against the rate table.
//
// Example:
//
//	handler := NewQuoteRateQueryHandler(db)
//	query, err := NewQuoteRateQueryForDistance(120)
//	if err != nil {
//	    return err
//	}
//
//	tiers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	if len(tiers) == 0 {
//	    fmt.Println("no tier covers this distance")
//	}
type QuoteRateQueryHandler struct {
	db *gorm.DB
}

// NewQuoteRateQueryHandler creates a handler for rate quote queries.
func NewQuoteRateQueryHandler(db *gorm.DB) QuoteRateQueryHandler {
	return QuoteRateQueryHandler{db: db}
}

// Handle returns the tiers matching the query, ordered by lower limit.
// A distance falling outside every tier yields an empty slice, not an error.
func (h QuoteRateQueryHandler) Handle(ctx context.Context, query QuoteRateQuery) ([]QuoteRateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT id, lower_limit, upper_limit, price
	        FROM rate_tiers`
	args := make([]any, 0, 2)
	if query.Distance() != nil {
		sql += ` WHERE lower_limit <= ? AND upper_limit > ?`
		args = append(args, *query.Distance(), *query.Distance())
	}
	sql += ` ORDER BY lower_limit`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiers := make([]QuoteRateQueryResponse, 0)
	for rows.Next() {
		var tier QuoteRateQueryResponse
		if err := rows.Scan(&tier.ID, &tier.LowerLimit, &tier.UpperLimit, &tier.Price); err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tiers, nil
}
