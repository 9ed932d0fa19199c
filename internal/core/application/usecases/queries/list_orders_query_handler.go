package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists orders newest first, with the order id as a
// tiebreak for orders created in the same instant.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT o.id, o.tracking_code, o.payment_method, o.product_preview,
	               o.estimate_distance, o.shipping_price, o.date_created,
	               o.sender_id, o.receiver_id
	        FROM orders o`
	args := make([]any, 0, 1)
	if query.OwnerAccountID() != nil {
		sql += ` JOIN parties s ON s.id = o.sender_id
		         WHERE s.owner_account_id = ?`
		args = append(args, *query.OwnerAccountID())
	}
	sql += ` ORDER BY o.date_created DESC, o.id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var order ListOrdersQueryResponse
		if err := rows.Scan(
			&order.ID, &order.TrackingCode, &order.PaymentMethod, &order.ProductPreview,
			&order.EstimateDistance, &order.ShippingPrice, &order.DateCreated,
			&order.SenderID, &order.ReceiverID,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
