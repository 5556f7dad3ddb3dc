package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	// Clearing the driver binding must persist as well, so implementations
	// have to write NULL driver ids rather than skip zero values.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by reference. The reference is matched
	// against the external order id first and falls back to the internal UUID
	// when the raw value parses as one.
	Get(ctx context.Context, ref order.Ref) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest order still waiting for a
	// driver. Used by the dispatch job to drain the pending queue in FIFO order.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)

	// GetAllInAssignedStatus retrieves all orders currently assigned to drivers.
	GetAllInAssignedStatus(ctx context.Context) ([]*order.Order, error)
}
