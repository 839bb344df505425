package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStateTransition is returned when an order's current status
	// does not permit the requested transition.
	ErrInvalidStateTransition = errors.New("order status does not allow the requested transition")

	// ErrAnotherOrderInPreparation is returned when take-charge is attempted
	// while the kitchen's single preparation slot is already occupied.
	ErrAnotherOrderInPreparation = errors.New("another order is already in preparation")
)

// Status represents the lifecycle state of a pizza order.
// It implements a state machine with strictly forward transitions:
//
//	Waiting ──> Preparing ──> Ready
//
// The take-charge transition is additionally guarded by the kitchen-wide
// preparation slot: at most one order may be Preparing at any instant.
// Ready is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Waiting is the initial status of a freshly created order.
	Waiting

	// Preparing indicates the order occupies the single preparation slot.
	Preparing

	// Ready indicates preparation has finished. Terminal state.
	Ready
)

// getStatusStrings returns the string representation of every Status value,
// including Unknown, for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Waiting:   "Waiting",
		Preparing: "Preparing",
		Ready:     "Ready",
	}
}

// getValidStatusStrings returns only the statuses an order may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:   "Waiting",
		Preparing: "Preparing",
		Ready:     "Ready",
	}
}

// Validate checks that the Status is one of Waiting, Preparing, or Ready.
// Unknown and out-of-range values fail. Used when reconstructing orders
// from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidStateTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateTakeCharge checks whether the status allows the take-charge
// transition without performing it. Only Waiting orders may be taken charge of.
func (s Status) ValidateTakeCharge() error {
	if s != Waiting {
		return fmt.Errorf("%w: take-charge is not allowed from status %s", ErrInvalidStateTransition, s)
	}
	return nil
}

// TakeCharge transitions the status to Preparing.
//
// preparingCount is the kitchen-wide number of orders currently in Preparing
// status; the transition is rejected with ErrAnotherOrderInPreparation when
// it is non-zero. The caller must evaluate the count and apply the resulting
// status as one atomic unit, otherwise the single-slot guarantee is lost.
//
// Returns (0, error) when the transition is not allowed.
func (s Status) TakeCharge(preparingCount int) (Status, error) {
	if err := s.ValidateTakeCharge(); err != nil {
		return 0, err
	}
	if preparingCount >= 1 {
		return 0, ErrAnotherOrderInPreparation
	}

	return Preparing, nil
}

// Complete transitions the status to Ready.
//
// Only Preparing orders can be completed; completing frees the preparation
// slot. Returns (0, error) when the transition is not allowed.
func (s Status) Complete() (Status, error) {
	if s != Preparing {
		return 0, fmt.Errorf("%w: complete is not allowed from status %s", ErrInvalidStateTransition, s)
	}

	return Ready, nil
}
