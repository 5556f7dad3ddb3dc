package commands

import (
	"dispatch/internal/pkg/guard"
)

// DispatchPendingOrderCommand represents a request to take the oldest pending
// order and assign the nearest available driver to it. Carries no parameters;
// the handler drains the pending queue one order per invocation.
type DispatchPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingOrderCommand creates a command to dispatch one pending order.
func NewDispatchPendingOrderCommand() DispatchPendingOrderCommand {
	return DispatchPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DispatchPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingOrderCommandIsNotConstructed)
}
