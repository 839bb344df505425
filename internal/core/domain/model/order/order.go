package order

import (
	"errors"
	"unicode/utf8"

	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/pkg/errs"
)

// maxDescriptionLength bounds the order description, matching the storage
// column size.
const maxDescriptionLength = 255

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a pizza order in the system. It is the aggregate root that
// manages the order lifecycle from creation through preparation to pickup.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier
//   - Must have a valid order code, immutable once assigned
//   - Description is non-empty and at most 255 characters
//   - Status transitions follow Waiting -> Preparing -> Ready, and the
//     take-charge transition respects the kitchen's single preparation slot
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields so that all mutation goes through the
// validated lifecycle methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// code is the human-readable date-scoped order code
	code Code

	// description is the customer-facing order content
	description string

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Waiting status. This is the only way to
// create an order for a fresh request; persistence layers reconstruct
// existing orders with RestoreOrder.
//
// Returns a validation error if the id or code is invalid, or if the
// description is empty or longer than 255 characters.
func NewOrder(id kernel.UUID, code Code, description string) (*Order, error) {
	order := &Order{
		status:        Waiting,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCode(code),
		order.setDescription(description),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state, including its
// current status. Used by storage adapters; the status must be a valid
// lifecycle state.
func RestoreOrder(id kernel.UUID, code Code, description string, status Status) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCode(code),
		order.setDescription(description),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for nil or zero-value orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the order's human-readable code.
func (o *Order) Code() Code {
	return o.code
}

// Description returns the order description.
func (o *Order) Description() string {
	return o.description
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TakeCharge moves the order into the preparation slot.
//
// preparingCount is the kitchen-wide number of orders currently Preparing.
// The transition fails with ErrInvalidStateTransition when the order is not
// Waiting, and with ErrAnotherOrderInPreparation when the slot is occupied.
//
// Evaluating preparingCount and persisting the resulting status must happen
// inside one critical section or one conditional storage update; the
// aggregate alone cannot see concurrent writers.
func (o *Order) TakeCharge(preparingCount int) error {
	newStatus, err := o.status.TakeCharge(preparingCount)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as Ready, freeing the preparation slot.
// Fails with ErrInvalidStateTransition when the order is not Preparing.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if length := utf8.RuneCountInString(description); length > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", length, 1, maxDescriptionLength)
	}
	o.description = description
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
