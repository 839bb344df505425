// Package errs provides standardized error types for the pizza order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is/errors.As support
//
// Transport layers map these kinds to protocol responses without string
// matching: ValueIsRequired/ValueIsInvalid/ValueIsOutOfRange are client input
// errors, ObjectNotFound is a missing resource, and anything else propagates
// as a server error.
package errs
