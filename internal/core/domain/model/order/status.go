package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions owned by assignment:
//
//	pending ──> assigned ──> (in_progress ──> picked_up ──> delivered)
//	    ^           │
//	    └───────────┘
//	     (unassign)
//
// Assignment only manipulates the pending/assigned pair. The in-flight and
// terminal states beyond assigned are pass-through: they exist so orders can
// be stored and listed in those states, but no transition into them is
// performed here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order awaits a driver.
	Pending

	// Assigned indicates a driver is bound to the order.
	Assigned

	// InProgress indicates the delivery has started.
	InProgress

	// PickedUp indicates the driver has collected the order.
	PickedUp

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled indicates the order was abandoned.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		PickedUp:   "picked_up",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		PickedUp:   "picked_up",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the persisted string form of an order status.
// Returns an error for anything outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted name of the status ("pending", "assigned", ...).
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment: an order carries a driver if and only if its status is
// assigned or a later in-flight state reached through assignment.
//
// Business Rules:
//   - Pending and cancelled orders must not have a driver
//   - Assigned, in_progress, picked_up and delivered orders must have a driver
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	driverStates := s == Assigned || s == InProgress || s == PickedUp || s == Delivered

	if hasDriver && !driverStates {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()))
	}

	if !hasDriver && driverStates {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s requires a driver", s.String()))
	}

	return nil
}
