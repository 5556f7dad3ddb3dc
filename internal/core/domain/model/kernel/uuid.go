package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID that skipped the
// constructor functions. Returned by Validate.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object shared by every aggregate in the
// system: orders, drivers and customers all key on it. It wraps
// github.com/google/uuid so the domain never handles the library type
// directly.
//
// The zero value is invalid; construct through NewUUID, UUIDFromString or
// UUIDFromBytes. The value is immutable and safe for concurrent reads.
//
// Example usage:
//
//	driverID := kernel.NewUUID()
//
//	orderID, err := kernel.UUIDFromString(rawID)
//	if err != nil {
//	    // rawID was not a UUID
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 UUID.
// This is how new aggregates get their identity.
//
// Example:
//
//	driverID := kernel.NewUUID()
//	fmt.Println(driverID.String()) // e.g., "0d0cdd2a-9a26-42cf-8fbb-2f9c23f21a14"
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the textual UUID forms accepted by uuid.Parse,
// including the plain, braced and urn:uuid variants. Used when identifiers
// arrive from route parameters or request bodies.
//
// Example:
//
//	driverID, err := kernel.UUIDFromString(body.DriverID)
//	if err != nil {
//	    return fmt.Errorf("invalid driver ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, typically a column
// value read back from the store. The nil UUID is rejected.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// A zero value renders as the all-zero UUID.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID, which the persistence DTOs store
// directly. Slice it (`u.Bytes()[:]`) when raw bytes are needed.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both values identify the same aggregate.
//
// Example:
//
//	if order.CustomerID().IsEqual(customer.ID()) {
//	    // order belongs to this customer
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
// Aggregate constructors call this on every identifier they receive.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
