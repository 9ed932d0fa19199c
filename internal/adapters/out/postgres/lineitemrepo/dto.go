// Package lineitemrepo provides data transfer objects and mapping functions for
// line item persistence. Line items are written only as the full set belonging
// to one order, inside the transaction that creates the order.
package lineitemrepo

import (
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/order"
)

// LineItemDTO represents the database structure for persisting line items.
type LineItemDTO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	OrderID int64  `gorm:"index"`
	Name    string `gorm:"type:varchar(255)"`
	Price   int64
}

// TableName overrides GORM's default naming convention to use "line_items".
func (LineItemDTO) TableName() string {
	return "line_items"
}

func fromDomain(orderID kernel.ID, item *order.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:      item.ID().Int64(),
		OrderID: orderID.Int64(),
		Name:    item.Name(),
		Price:   item.Price(),
	}
}

func toDomain(dto LineItemDTO) (*order.LineItem, error) {
	return order.RestoreLineItem(kernel.ID(dto.ID), kernel.ID(dto.OrderID), dto.Name, dto.Price)
}
