// Package queries contains read-only operations over the order store.
// Query handlers bypass the aggregate layer and read directly from the
// database, following the read side of the CQRS split.
package queries

import (
	"errors"

	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/core/domain/model/order"
	"pizzaparty/internal/pkg/guard"
)

var ErrGetWaitingOrdersQueryIsNotConstructed = errors.New(
	"GetWaitingOrdersQuery must be created via NewGetWaitingOrdersQuery constructor",
)

// GetWaitingOrdersQuery retrieves all orders still waiting for preparation.
// This is the kitchen's work queue.
//
// Example:
//
//	query := NewGetWaitingOrdersQuery()
//	handler := NewGetWaitingOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get waiting orders: %w", err)
//	}
//	fmt.Printf("%d orders waiting\n", len(orders))
type GetWaitingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWaitingOrdersQuery creates a query to retrieve waiting orders.
// This is a parameterless query.
func NewGetWaitingOrdersQuery() GetWaitingOrdersQuery {
	return GetWaitingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWaitingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWaitingOrdersQueryIsNotConstructed)
}

// GetWaitingOrdersQueryResponse represents one waiting order.
type GetWaitingOrdersQueryResponse struct {
	ID          kernel.UUID
	Code        order.Code
	Description string
	Status      order.Status
}
