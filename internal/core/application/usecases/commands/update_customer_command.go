package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a partial update of a customer's mutable
// fields. The phone number is the identity key and is not patchable.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	patch      customer.Patch

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to patch a customer.
// Validates that the customer ID is a valid UUID and the patch is not empty.
func NewUpdateCustomerCommand(customerID kernel.UUID, patch customer.Patch) (UpdateCustomerCommand, error) {
	updateCommand := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setCustomerID(customerID),
		updateCommand.setPatch(patch),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCustomerCommandIsNotConstructed if validation fails.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to patch.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Patch returns the partial update to apply.
func (c UpdateCustomerCommand) Patch() customer.Patch {
	return c.patch
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setPatch(patch customer.Patch) error {
	if patch.IsEmpty() {
		return customer.ErrNoFieldsToUpdate
	}

	c.patch = patch
	return nil
}
