package ports

import (
	"context"

	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Besides plain CRUD it carries the two operations the lifecycle depends on:
// the code-existence check backing create's collision retry, and the
// conditional TakeCharge update that makes the single-preparation-slot
// check-then-set atomic at the storage layer.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Fails when an order with the same id or code already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an errs.ObjectNotFoundError when the id matches nothing.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order by its human-readable code.
	// Returns an errs.ObjectNotFoundError when the code matches nothing.
	GetByCode(ctx context.Context, code order.Code) (*order.Order, error)

	// ExistsByCode reports whether any order carries the given code.
	// Used by the create flow as the secondary defense against duplicate codes.
	ExistsByCode(ctx context.Context, code order.Code) (bool, error)

	// GetAllInWaitingStatus retrieves all orders waiting to be taken charge of.
	GetAllInWaitingStatus(ctx context.Context) ([]*order.Order, error)

	// CountInPreparingStatus returns the system-wide number of orders
	// currently occupying the preparation slot (0 or 1 when the invariant holds).
	CountInPreparingStatus(ctx context.Context) (int, error)

	// TakeCharge applies the Waiting -> Preparing transition as one
	// conditional update: it succeeds only while the stored status is still
	// Waiting and no other order is Preparing. When the condition fails it
	// returns order.ErrAnotherOrderInPreparation if the slot is occupied,
	// order.ErrInvalidStateTransition if the order left Waiting, or an
	// errs.ObjectNotFoundError if the order vanished.
	//
	// The aggregate passed in must already be in Preparing status.
	TakeCharge(ctx context.Context, aggregate *order.Order) error
}
