package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrUnassignDriverCommandIsNotConstructed = errors.New(
	"UnassignDriverCommand must be created via NewUnassignDriverCommand constructor",
)

// UnassignDriverCommand represents a request to release the driver bound to
// an order and return the order to the pending queue.
type UnassignDriverCommand struct { //nolint:recvcheck //using for validation
	orderRef order.Ref

	guard guard.ConstructorGuard
}

// NewUnassignDriverCommand creates a command to unassign an order's driver.
// Validates that the order reference carries a value.
func NewUnassignDriverCommand(orderRef order.Ref) (UnassignDriverCommand, error) {
	unassignCommand := UnassignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := unassignCommand.setOrderRef(orderRef); err != nil {
		return UnassignDriverCommand{}, err
	}

	return unassignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnassignDriverCommandIsNotConstructed if validation fails.
func (c UnassignDriverCommand) Validate() error {
	return c.guard.Validate(ErrUnassignDriverCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to release.
func (c UnassignDriverCommand) OrderRef() order.Ref {
	return c.orderRef
}

func (c *UnassignDriverCommand) setOrderRef(orderRef order.Ref) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}
