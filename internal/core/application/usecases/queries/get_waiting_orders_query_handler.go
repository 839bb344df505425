package queries

import (
	"context"

	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWaitingOrdersQueryHandler reads the waiting-order queue from the database.
// Results come back sorted by code, which within a day matches creation order.
type GetWaitingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetWaitingOrdersQueryHandler creates a handler for waiting order queries.
// Requires a GORM database connection for query execution.
func NewGetWaitingOrdersQueryHandler(db *gorm.DB) GetWaitingOrdersQueryHandler {
	return GetWaitingOrdersQueryHandler{db: db}
}

// Handle executes the query and returns every order in Waiting status.
func (h GetWaitingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWaitingOrdersQuery,
) ([]GetWaitingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetWaitingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			description
		FROM orders
		WHERE status = ?
		ORDER BY code
	`, order.Waiting).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var rawCode string
		var description string

		err = rows.Scan(
			&id,
			&rawCode,
			&description,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		code, codeErr := order.CodeFromString(rawCode)
		if codeErr != nil {
			return nil, codeErr
		}

		orders = append(orders, GetWaitingOrdersQueryResponse{
			ID:          orderID,
			Code:        code,
			Description: description,
			Status:      order.Waiting,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
