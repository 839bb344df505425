package order

import (
	"fmt"
	"regexp"
	"time"

	"pizzaparty/internal/pkg/errs"
)

const (
	// CodePrefix is the fixed prefix of every order code.
	CodePrefix = "COD"

	// CodeDateLayout is the DDMMYYYY layout of the date segment.
	CodeDateLayout = "02012006"

	// MaxDailySequence is the highest sequence number a single day can issue.
	// The numeric suffix is zero-padded to four digits and never wraps.
	MaxDailySequence = 9999
)

var codePattern = regexp.MustCompile(`^` + CodePrefix + `-\d{8}-\d{4}$`)

// ErrCodeIsNotConstructed indicates a zero-value Code that bypassed the
// constructor functions.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"Code must be created via NewCode or CodeFromString",
)

// Code is the human-readable order identifier in the form
// PREFIX-DDMMYYYY-NNNN, e.g. "COD-21032025-0007". It is unique across all
// orders for all time and immutable once assigned.
//
// The zero value is invalid; construct instances with NewCode or
// CodeFromString.
type Code struct {
	value string
}

// NewCode formats a code for the given day and sequence number.
// The sequence must lie in [1, MaxDailySequence].
func NewCode(day time.Time, sequence int) (Code, error) {
	if sequence < 1 || sequence > MaxDailySequence {
		return Code{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, MaxDailySequence)
	}

	return Code{
		value: fmt.Sprintf("%s-%s-%04d", CodePrefix, day.Format(CodeDateLayout), sequence),
	}, nil
}

// CodeFromString parses a code from its string form, typically from a
// request path or a database column. Returns an error when the string does
// not match the PREFIX-DDMMYYYY-NNNN format.
func CodeFromString(s string) (Code, error) {
	if !codePattern.MatchString(s) {
		return Code{}, errs.NewValueIsInvalidErrorWithCause(
			"order code",
			fmt.Errorf("%q does not match %s-DDMMYYYY-NNNN", s, CodePrefix),
		)
	}

	return Code{value: s}, nil
}

// String returns the code's string form.
func (c Code) String() string {
	return c.value
}

// IsEqual reports whether two codes are the same.
func (c Code) IsEqual(other Code) bool {
	return c.value == other.value
}

// Validate returns ErrCodeIsNotConstructed for the zero value.
func (c Code) Validate() error {
	if c.value == "" {
		return ErrCodeIsNotConstructed
	}
	return nil
}
