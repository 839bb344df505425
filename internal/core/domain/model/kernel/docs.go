// Package kernel contains shared value objects used across the domain model.
// These types enforce their invariants at construction time: a zero value is
// always invalid and every instance must come from a constructor function.
package kernel
