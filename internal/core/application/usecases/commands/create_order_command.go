package commands

import (
	"errors"
	"unicode/utf8"

	"pizzaparty/internal/pkg/errs"
	"pizzaparty/internal/pkg/guard"
)

// maxDescriptionLength mirrors the aggregate's bound so that bad input is
// rejected before a transaction is opened.
const maxDescriptionLength = 255

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new pizza order.
// The order code and identifier are minted by the handler; callers supply
// only the description.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Margherita, extra basil")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	description string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The description must be non-empty and at most 255 characters.
func NewCreateOrderCommand(description string) (CreateOrderCommand, error) {
	if description == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("description")
	}
	if length := utf8.RuneCountInString(description); length > maxDescriptionLength {
		return CreateOrderCommand{}, errs.NewValueIsOutOfRangeError(
			"description length", length, 1, maxDescriptionLength,
		)
	}

	return CreateOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Description returns the customer-facing order content.
func (c CreateOrderCommand) Description() string {
	return c.description
}
