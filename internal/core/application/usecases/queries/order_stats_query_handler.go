package queries

import (
	"context"

	"gorm.io/gorm"
)

type OrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewOrderStatsQueryHandler(db *gorm.DB) OrderStatsQueryHandler {
	return OrderStatsQueryHandler{db: db}
}

func (h OrderStatsQueryHandler) Handle(ctx context.Context, query OrderStatsQuery) (OrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*), COALESCE(SUM(shipping_price), 0)
		 FROM orders
		 WHERE date_created >= ?`,
		query.Since()).Row()

	var response OrderStatsQueryResponse
	if err := row.Scan(&response.Count, &response.TotalShippingPrice); err != nil {
		return OrderStatsQueryResponse{}, err
	}

	return response, nil
}
