// Package order contains the order aggregate and its value objects.
//
// An order moves through a strictly forward lifecycle, Waiting -> Preparing
// -> Ready, and carries a date-scoped sequential code of the form
// COD-DDMMYYYY-NNNN. Two invariants live here: status transitions never skip
// or reverse, and the take-charge transition respects the kitchen's single
// preparation slot. The slot guard is evaluated against a caller-supplied
// count; making that evaluation atomic with the status write is the
// responsibility of the application layer and the storage adapter.
package order
