package order

import (
	"fmt"
	"slices"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Processing ──┬──> Shipping ──┬──> Delivered ──> Returned ──> Refunded
//	             │               │                     ▲
//	             │               └─────────────────────┘
//	             └──> Canceled
//
// Canceled and Refunded have no outgoing edges.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota
	Processing
	Shipping
	Delivered
	Canceled
	Returned
	Refunded
)

var statusNames = map[Status]string{
	Unknown:    "Unknown",
	Processing: "Processing",
	Shipping:   "Shipping",
	Delivered:  "Delivered",
	Canceled:   "Canceled",
	Returned:   "Returned",
	Refunded:   "Refunded",
}

// transitions is the only source of truth for legal status changes.
var transitions = map[Status][]Status{
	Processing: {Shipping, Canceled},
	Shipping:   {Delivered, Returned},
	Delivered:  {Returned},
	Returned:   {Refunded},
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Processing, Shipping, Delivered, Canceled, Returned, Refunded}
}

// AllowedTransitions returns the statuses reachable in one step from from.
// Terminal and invalid statuses yield an empty slice.
func AllowedTransitions(from Status) []Status {
	return slices.Clone(transitions[from])
}

// ParseStatus converts a status name such as "Shipping" into a Status.
// Names are case-sensitive, matching what clients send and what String returns.
func ParseStatus(name string) (Status, error) {
	for status, statusName := range statusNames {
		if status != Unknown && statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks that s is one of the six order statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for values outside the set.
func (s Status) String() string {
	if str, ok := statusNames[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(transitions[s]) == 0
}

// CanTransitionTo reports whether s -> to is an edge of the transition table.
func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(transitions[s], to)
}

// TransitionTo validates the move s -> to and returns the new status.
//
// Returns:
//   - (to, nil) when the edge exists
//   - a ValueIsInvalidError when to is not a valid status
//   - an InvalidTransitionError when the table has no such edge, including
//     every move out of a terminal status
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return to, nil
}
