package queries

import (
	"context"
	"database/sql"
	"errors"

	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/core/domain/model/order"
	"pizzaparty/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByCodeQueryHandler looks up a single order by code.
type GetOrderByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByCodeQueryHandler creates a handler for order lookups by code.
// Requires a GORM database connection for query execution.
func NewGetOrderByCodeQueryHandler(db *gorm.DB) GetOrderByCodeQueryHandler {
	return GetOrderByCodeQueryHandler{db: db}
}

// Handle executes the lookup. Returns an errs.ObjectNotFoundError when no
// order carries the requested code.
func (h GetOrderByCodeQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByCodeQuery,
) (GetOrderByCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByCodeQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			description,
			status
		FROM orders
		WHERE code = ?
	`, query.Code().String()).Row()

	var id uuid.UUID
	var rawCode string
	var description string
	var rawStatus int

	err := row.Scan(
		&id,
		&rawCode,
		&description,
		&rawStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByCodeQueryResponse{}, errs.NewObjectNotFoundError("order code", query.Code())
	}
	if err != nil {
		return GetOrderByCodeQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderByCodeQueryResponse{}, err
	}

	code, err := order.CodeFromString(rawCode)
	if err != nil {
		return GetOrderByCodeQueryResponse{}, err
	}

	status := order.Status(rawStatus)
	if err = status.Validate(); err != nil {
		return GetOrderByCodeQueryResponse{}, err
	}

	return GetOrderByCodeQueryResponse{
		ID:          orderID,
		Code:        code,
		Description: description,
		Status:      status,
	}, nil
}
