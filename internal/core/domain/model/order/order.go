package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrExternalIDIsRequired is returned when attempting to create an order without an external identifier.
	ErrExternalIDIsRequired = errs.NewValueIsRequiredError("order_id")
	// ErrAddressIsRequired is returned when attempting to create an order without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderAlreadyAssigned is returned when assigning an order that already carries a driver.
	ErrOrderAlreadyAssigned = errs.NewPreconditionFailedError("order is already assigned to a driver")
	// ErrOrderNotAssigned is returned when unassigning an order that carries no driver.
	ErrOrderNotAssigned = errs.NewPreconditionFailedError("order is not assigned to any driver")
	// ErrNoFieldsToUpdate is returned when an empty patch is applied.
	ErrNoFieldsToUpdate = errs.NewValueIsRequiredError("no fields to update")
)

// Order represents a delivery order. It is the aggregate root that manages
// the order lifecycle with respect to driver assignment.
//
// Order follows these invariants:
//   - Must have a valid internal identifier and a non-empty external order_id
//   - Must have a delivery address and coordinates
//   - Carries a driver if and only if its status is assigned or a later
//     in-flight state reached through assignment; a pending order never
//     carries a driver
//   - Can only be created through the NewOrder constructor
type Order struct {
	id         kernel.UUID
	externalID string
	customerID kernel.UUID
	driverID   *kernel.UUID
	address    string
	location   kernel.Location
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
	guard      guard.ConstructorGuard
}

// NewOrder creates a new Order in the pending status with no driver.
//
// Parameters:
//   - id: Internal unique identifier (must be a valid UUID)
//   - externalID: External-facing order identifier (must be non-empty)
//   - customerID: Canonical customer reference (must be a valid UUID)
//   - address: Delivery address (must be non-empty)
//   - location: Delivery coordinates (must be constructed)
func NewOrder(
	id kernel.UUID,
	externalID string,
	customerID kernel.UUID,
	address string,
	location kernel.Location,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setExternalID(externalID),
		order.setCustomerID(customerID),
		order.setAddress(address),
		order.setLocation(location),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, the restored order keeps its persisted status, driver
// binding and timestamps. The status/driver consistency invariant is
// revalidated on restore to catch corrupted rows.
func RestoreOrder(
	id kernel.UUID,
	externalID string,
	customerID kernel.UUID,
	driverID *kernel.UUID,
	address string,
	location kernel.Location,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, externalID, customerID, address, location)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.driverID = driverID
	order.createdAt = createdAt
	order.updatedAt = updatedAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their internal identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ExternalID returns the external-facing order identifier.
func (o *Order) ExternalID() string {
	return o.externalID
}

// CustomerID returns the canonical customer reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DriverID returns the bound driver's identifier.
// Returns nil when no driver is assigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Location returns the delivery coordinates.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign binds a driver to the order and moves it to the assigned status.
//
// Business rules:
//   - The driver ID must be valid
//   - The order must currently be pending with no driver bound;
//     reassignment requires an unassign first
//
// Returns ErrOrderAlreadyAssigned if a driver is already bound.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID != nil {
		return ErrOrderAlreadyAssigned
	}

	if o.status != Pending {
		return errs.NewPreconditionFailedError(
			"order in status " + o.status.String() + " cannot be assigned")
	}

	o.driverID = &driverID
	o.status = Assigned
	o.updatedAt = time.Now().UTC()
	return nil
}

// Unassign releases the bound driver and returns the order to pending.
// Returns the identifier of the previously bound driver so the caller can
// release the driver record as the second half of the paired update.
//
// Returns ErrOrderNotAssigned if no driver is bound.
func (o *Order) Unassign() (kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if o.driverID == nil {
		return kernel.UUID{}, ErrOrderNotAssigned
	}

	previous := *o.driverID
	o.driverID = nil
	o.status = Pending
	o.updatedAt = time.Now().UTC()
	return previous, nil
}

// ApplyPatch applies a partial update to the order's mutable fields,
// touching only the fields the patch carries, plus the update timestamp.
// Returns ErrNoFieldsToUpdate when the patch is empty.
func (o *Order) ApplyPatch(patch Patch) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if patch.Status != nil {
		if err := patch.Status.Validate(); err != nil {
			return err
		}
		if err := patch.Status.ValidateCanHaveDriver(o.driverID != nil); err != nil {
			return err
		}
	}

	if patch.Address != nil {
		if *patch.Address == "" {
			return ErrAddressIsRequired
		}
		o.address = *patch.Address
	}
	if patch.Location != nil {
		if err := patch.Location.Validate(); err != nil {
			return err
		}
		o.location = *patch.Location
	}
	if patch.Status != nil {
		o.status = *patch.Status
	}

	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setExternalID(externalID string) error {
	if externalID == "" {
		return ErrExternalIDIsRequired
	}
	o.externalID = externalID
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

// Patch is an explicit partial-update structure for the order's mutable
// fields: an optional value per field, applied field-by-field.
type Patch struct {
	Address  *string
	Location *kernel.Location
	Status   *Status
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Address == nil && p.Location == nil && p.Status == nil
}
