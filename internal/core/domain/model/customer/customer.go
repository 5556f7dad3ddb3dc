package customer

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("customer_name")
	// ErrPhoneIsRequired is returned when attempting to create a customer without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrNoFieldsToUpdate is returned when an empty patch is applied.
	ErrNoFieldsToUpdate = errs.NewValueIsRequiredError("no fields to update")
)

// Customer represents a customer identity in the system.
// It is an aggregate root keyed for deduplication by phone number: the same
// person contacting the service across orders is reconciled into a single
// record by matching on phone.
//
// Key responsibilities:
//   - Holding the canonical identity fields (name, phone, chat handle, address)
//   - Computing field-level diffs against newly observed contact details
//   - Applying partial updates while tracking the update timestamp
//
// Business rules:
//   - Name and phone are mandatory; chat handle and address are optional
//   - The phone number is the natural deduplication key and is fixed at
//     creation; neither reconciliation nor a partial update can change it
//   - Customers are never deleted by this core
type Customer struct {
	id         kernel.UUID
	name       string
	phone      string
	chatHandle *int64
	address    *string
	createdAt  time.Time
	updatedAt  time.Time
	guard      guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the given contact details.
// Chat handle and address may be nil, matching a first contact where only
// name and phone are known.
func NewCustomer(id kernel.UUID, name string, phone string, chatHandle *int64, address *string) (*Customer, error) {
	now := time.Now().UTC()
	customer := &Customer{
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setPhone(phone),
	); err != nil {
		return nil, err
	}

	customer.chatHandle = chatHandle
	customer.address = address
	return customer, nil
}

// RestoreCustomer reconstructs a Customer aggregate from persistent storage,
// preserving its stored timestamps.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	phone string,
	chatHandle *int64,
	address *string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Customer, error) {
	customer, err := NewCustomer(id, name, phone, chatHandle, address)
	if err != nil {
		return nil, err
	}

	customer.createdAt = createdAt
	customer.updatedAt = updatedAt
	return customer, nil
}

// Validate ensures the Customer instance was properly constructed through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number, the deduplication key.
func (c *Customer) Phone() string {
	return c.phone
}

// ChatHandle returns the optional external chat identifier.
// Returns nil if no chat handle is known.
func (c *Customer) ChatHandle() *int64 {
	return c.chatHandle
}

// Address returns the customer's optional address.
// Returns nil if no address is known.
func (c *Customer) Address() *string {
	return c.address
}

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// ChangesFrom computes a field-level diff between the customer's stored
// details and newly observed ones. Only fields that are provided (non-empty
// name and address, non-nil chat handle) and actually differ from the stored
// value appear in the resulting patch. An unchanged observation yields an
// empty patch, which callers treat as the no-write fast path.
func (c *Customer) ChangesFrom(name string, chatHandle *int64, address *string) Patch {
	var patch Patch

	if name != "" && name != c.name {
		patch.Name = &name
	}

	if chatHandle != nil && (c.chatHandle == nil || *c.chatHandle != *chatHandle) {
		patch.ChatHandle = chatHandle
	}

	if address != nil && *address != "" && (c.address == nil || *c.address != *address) {
		patch.Address = address
	}

	return patch
}

// ApplyPatch applies a partial update to the customer, touching only the
// fields the patch carries, plus the update timestamp.
// Returns ErrNoFieldsToUpdate when the patch is empty.
func (c *Customer) ApplyPatch(patch Patch) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if patch.Name != nil {
		c.name = *patch.Name
	}
	if patch.ChatHandle != nil {
		c.chatHandle = patch.ChatHandle
	}
	if patch.Address != nil {
		c.address = patch.Address
	}

	c.updatedAt = time.Now().UTC()
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

// Patch is an explicit partial-update structure for the customer's mutable
// fields: an optional value per field, applied field-by-field.
type Patch struct {
	Name       *string
	ChatHandle *int64
	Address    *string
}

// IsEmpty reports whether the patch carries no changes.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.ChatHandle == nil && p.Address == nil
}
