package driver

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the availability state of a driver.
//
// State transitions:
//
//	available <──> busy
//
// A driver becomes busy when bound to an order and returns to available when
// the order is unassigned. The set is deliberately small but extendable.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available indicates the driver can take a new order.
	Available

	// Busy indicates the driver is bound to an active order.
	Busy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Busy:      "busy",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "available",
		Busy:      "busy",
	}
}

// StatusFromString parses the persisted string form of a driver status.
// Returns an error for anything outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Available, Busy.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

// String returns the persisted name of the status ("available", "busy").
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
