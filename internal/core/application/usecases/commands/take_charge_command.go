package commands

import (
	"errors"

	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/pkg/guard"
)

var ErrTakeChargeCommandIsNotConstructed = errors.New(
	"TakeChargeCommand must be created via NewTakeChargeCommand constructor",
)

// TakeChargeCommand represents a request to move a waiting order into the
// single system-wide preparation slot.
type TakeChargeCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTakeChargeCommand creates a command to take charge of the given order.
func NewTakeChargeCommand(orderID kernel.UUID) (TakeChargeCommand, error) {
	if err := orderID.Validate(); err != nil {
		return TakeChargeCommand{}, err
	}

	return TakeChargeCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TakeChargeCommand) Validate() error {
	return c.guard.Validate(ErrTakeChargeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to take charge of.
func (c TakeChargeCommand) OrderID() kernel.UUID {
	return c.orderID
}
