// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It converts between the order aggregate and its
// relational representation.
package orderrepo

import (
	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The code column carries a unique index so the database itself rejects
// duplicate order codes, and status is indexed for the queue and slot queries.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(17);uniqueIndex"`
	Description string    `gorm:"type:varchar(255)"`
	Status      int       `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code().String(),
		Description: aggregate.Description(),
		Status:      int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := order.CodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, code, dto.Description, order.Status(dto.Status))
}
