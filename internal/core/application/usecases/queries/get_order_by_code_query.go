package queries

import (
	"errors"

	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/core/domain/model/order"
	"pizzaparty/internal/pkg/guard"
)

var ErrGetOrderByCodeQueryIsNotConstructed = errors.New(
	"GetOrderByCodeQuery must be created via NewGetOrderByCodeQuery constructor",
)

// GetOrderByCodeQuery retrieves a single order by its human-readable code.
// This is the lookup customers use to check whether their pizza is ready.
type GetOrderByCodeQuery struct {
	code order.Code

	guard guard.ConstructorGuard
}

// NewGetOrderByCodeQuery creates a query for the given order code.
func NewGetOrderByCodeQuery(code order.Code) (GetOrderByCodeQuery, error) {
	if err := code.Validate(); err != nil {
		return GetOrderByCodeQuery{}, err
	}

	return GetOrderByCodeQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByCodeQueryIsNotConstructed)
}

// Code returns the code to look up.
func (q GetOrderByCodeQuery) Code() order.Code {
	return q.code
}

// GetOrderByCodeQueryResponse represents the tracked order.
type GetOrderByCodeQueryResponse struct {
	ID          kernel.UUID
	Code        order.Code
	Description string
	Status      order.Status
}
