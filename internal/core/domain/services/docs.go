// Package services contains stateless and process-local domain services
// that do not belong to a single aggregate.
//
// CodeGenerator is the owner of the daily order-code counter. Its
// correctness does not depend on storage: the counter update itself is
// race-free, and the store-side uniqueness check in the create flow is a
// secondary safety net, not the primary defense.
package services
