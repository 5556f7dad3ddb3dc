package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/pkg/guard"
)

var ErrResolveCustomerCommandIsNotConstructed = errors.New(
	"ResolveCustomerCommand must be created via NewResolveCustomerCommand constructor",
)

// ResolveCustomerCommand represents a request to resolve a customer record
// from observed contact details. The phone number is the deduplication key:
// an existing customer with the same phone is updated in place, otherwise a
// new one is registered.
type ResolveCustomerCommand struct { //nolint:recvcheck //using for validation
	name       string
	phone      string
	chatHandle *int64
	address    *string

	guard guard.ConstructorGuard
}

// NewResolveCustomerCommand creates a command to resolve a customer by phone.
// Validates that name and phone are not empty. Chat handle and address are
// optional details merged into the record when present.
func NewResolveCustomerCommand(
	name string,
	phone string,
	chatHandle *int64,
	address *string,
) (ResolveCustomerCommand, error) {
	resolveCommand := ResolveCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resolveCommand.setName(name),
		resolveCommand.setPhone(phone),
	); err != nil {
		return ResolveCustomerCommand{}, err
	}

	resolveCommand.chatHandle = chatHandle
	resolveCommand.address = address

	return resolveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveCustomerCommandIsNotConstructed if validation fails.
func (c ResolveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrResolveCustomerCommandIsNotConstructed)
}

// Name returns the observed customer name.
func (c ResolveCustomerCommand) Name() string {
	return c.name
}

// Phone returns the customer phone number used as the deduplication key.
func (c ResolveCustomerCommand) Phone() string {
	return c.phone
}

// ChatHandle returns the optional messenger chat handle.
func (c ResolveCustomerCommand) ChatHandle() *int64 {
	return c.chatHandle
}

// Address returns the optional customer address.
func (c ResolveCustomerCommand) Address() *string {
	return c.address
}

func (c *ResolveCustomerCommand) setName(name string) error {
	if name == "" {
		return customer.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *ResolveCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return customer.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
