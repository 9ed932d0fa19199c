package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler loads a single order together with both parties and
// every line item. Returns ObjectNotFoundError when the order does not exist.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT o.id, o.tracking_code, o.payment_method, o.product_preview, o.note,
		        o.estimate_distance, o.shipping_price, o.date_created,
		        s.id, s.role, s.name, s.phone, s.address_line, s.city, s.postal_code,
		        r.id, r.role, r.name, r.phone, r.address_line, r.city, r.postal_code
		 FROM orders o
		 JOIN parties s ON s.id = o.sender_id
		 JOIN parties r ON r.id = o.receiver_id
		 WHERE o.id = ?`,
		query.OrderID()).Row()

	var response GetOrderQueryResponse
	err := row.Scan(
		&response.ID, &response.TrackingCode, &response.PaymentMethod, &response.ProductPreview,
		&response.Note, &response.EstimateDistance, &response.ShippingPrice, &response.DateCreated,
		&response.Sender.ID, &response.Sender.Role, &response.Sender.Name, &response.Sender.Phone,
		&response.Sender.AddressLine, &response.Sender.City, &response.Sender.PostalCode,
		&response.Receiver.ID, &response.Receiver.Role, &response.Receiver.Name, &response.Receiver.Phone,
		&response.Receiver.AddressLine, &response.Receiver.City, &response.Receiver.PostalCode,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT id, name, price FROM line_items WHERE order_id = ? ORDER BY id`,
		query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	response.LineItems = make([]LineItemResponse, 0)
	for rows.Next() {
		var item LineItemResponse
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return GetOrderQueryResponse{}, err
		}
		response.LineItems = append(response.LineItems, item)
	}
	if err := rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
