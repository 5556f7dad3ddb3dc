package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrAutoAssignDriverCommandIsNotConstructed = errors.New(
	"AutoAssignDriverCommand must be created via NewAutoAssignDriverCommand constructor",
)

// AutoAssignDriverCommand represents a request to assign the nearest
// available driver to an order.
type AutoAssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderRef order.Ref

	guard guard.ConstructorGuard
}

// NewAutoAssignDriverCommand creates a command to auto-assign a driver.
// Validates that the order reference carries a value.
func NewAutoAssignDriverCommand(orderRef order.Ref) (AutoAssignDriverCommand, error) {
	autoAssignCommand := AutoAssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := autoAssignCommand.setOrderRef(orderRef); err != nil {
		return AutoAssignDriverCommand{}, err
	}

	return autoAssignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoAssignDriverCommandIsNotConstructed if validation fails.
func (c AutoAssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignDriverCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to assign.
func (c AutoAssignDriverCommand) OrderRef() order.Ref {
	return c.orderRef
}

func (c *AutoAssignDriverCommand) setOrderRef(orderRef order.Ref) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}
