// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Sender and receiver reference party rows written in the same transaction.
type OrderDTO struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	TrackingCode     uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	SenderID         int64           `gorm:"index"`
	ReceiverID       int64           `gorm:"index"`
	PaymentMethod    string          `gorm:"type:varchar(40)"`
	ProductPreview   string          `gorm:"type:varchar(255)"`
	Note             string          `gorm:"type:text"`
	EstimateDistance float64         `gorm:"type:double precision"`
	ShippingPrice    decimal.Decimal `gorm:"type:numeric(12,2)"`
	DateCreated      time.Time       `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:               o.ID().Int64(),
		TrackingCode:     o.TrackingCode(),
		SenderID:         o.SenderID().Int64(),
		ReceiverID:       o.ReceiverID().Int64(),
		PaymentMethod:    o.PaymentMethod(),
		ProductPreview:   o.ProductPreview(),
		Note:             o.Note(),
		EstimateDistance: o.EstimateDistance().Kilometers(),
		ShippingPrice:    o.ShippingPrice(),
		DateCreated:      o.DateCreated(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	distance, err := kernel.NewDistance(dto.EstimateDistance)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.SenderID),
		kernel.ID(dto.ReceiverID),
		dto.PaymentMethod,
		dto.ProductPreview,
		dto.Note,
		distance,
		dto.ShippingPrice,
		dto.TrackingCode,
		dto.DateCreated,
	)
}
