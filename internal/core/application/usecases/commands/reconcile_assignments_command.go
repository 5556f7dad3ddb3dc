package commands

import (
	"dispatch/internal/pkg/guard"
)

// ReconcileAssignmentsCommand represents a request to repair driver records
// left behind by a failed second-half status write: drivers bound to an
// assigned order but not marked busy.
type ReconcileAssignmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileAssignmentsCommand creates a command to reconcile driver statuses.
func NewReconcileAssignmentsCommand() ReconcileAssignmentsCommand {
	return ReconcileAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileAssignmentsCommandIsNotConstructed)
}
