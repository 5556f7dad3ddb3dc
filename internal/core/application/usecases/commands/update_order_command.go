package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order's mutable
// fields. Only the fields carried by the patch are touched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderRef order.Ref
	patch    order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order.
// Validates that the order reference carries a value and the patch is not
// empty.
func NewUpdateOrderCommand(orderRef order.Ref, patch order.Patch) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderRef(orderRef),
		updateCommand.setPatch(patch),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to patch.
func (c UpdateOrderCommand) OrderRef() order.Ref {
	return c.orderRef
}

// Patch returns the partial update to apply.
func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c *UpdateOrderCommand) setOrderRef(orderRef order.Ref) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}

func (c *UpdateOrderCommand) setPatch(patch order.Patch) error {
	if patch.IsEmpty() {
		return order.ErrNoFieldsToUpdate
	}

	c.patch = patch
	return nil
}
