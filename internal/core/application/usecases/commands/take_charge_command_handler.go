package commands

import (
	"context"
	"sync"

	"pizzaparty/internal/core/domain/model/order"
)

// TakeChargeCommandHandler moves a waiting order into preparation.
//
// The single-slot invariant is enforced twice. The handler serializes all
// take-charge attempts in this process behind a mutex, so the
// count-then-transition sequence never interleaves. The repository's
// conditional TakeCharge update then re-verifies the slot inside the
// transaction, which also covers deployments with more than one process.
type TakeChargeCommandHandler struct {
	uowFactory OrderUoWFactory
	mu         *sync.Mutex
}

// NewTakeChargeCommandHandler creates a handler for taking charge of orders.
// The returned handler owns the serialization lock; share one instance
// across the whole process.
func NewTakeChargeCommandHandler(uowFactory OrderUoWFactory) TakeChargeCommandHandler {
	return TakeChargeCommandHandler{
		uowFactory: uowFactory,
		mu:         &sync.Mutex{},
	}
}

// Handle moves the order from Waiting to Preparing and returns the updated
// aggregate. Fails with order.ErrAnotherOrderInPreparation when the slot is
// occupied and order.ErrInvalidStateTransition when the order is not Waiting.
func (h TakeChargeCommandHandler) Handle(
	ctx context.Context,
	cmd TakeChargeCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	preparingCount, err := orderRepo.CountInPreparingStatus(ctx)
	if err != nil {
		return nil, err
	}

	if err = orderAggregate.TakeCharge(preparingCount); err != nil {
		return nil, err
	}

	if err = orderRepo.TakeCharge(ctx, orderAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderAggregate, nil
}
