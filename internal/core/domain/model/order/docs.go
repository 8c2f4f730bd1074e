// Package order provides the Order aggregate of the storefront and its lifecycle
// state machine.
//
// The package includes:
//   - Order: the aggregate root (owner, line items, total, status, status log, delivery time)
//   - Status: the six order statuses and the transition table between them
//   - Actor: who a status change is attributed to, a user or the system
//   - StatusLogEntry: one append-only audit record per status change
//
// Key business rules:
//   - New orders start in Processing with one log entry attributed to the buyer
//   - Every status change goes through the transition table:
//     Processing -> Shipping | Canceled, Shipping -> Delivered | Returned,
//     Delivered -> Returned, Returned -> Refunded; Canceled and Refunded are terminal
//   - Every status change appends exactly one log entry carrying the new status
//   - A buyer may cancel only a Processing order and confirm delivery only of a Shipping order
//   - deliveredAt is set the first time the order reaches Delivered and is never cleared
package order
