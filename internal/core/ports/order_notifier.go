package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderNotifier pushes order lifecycle events to an external consumer.
// Delivery is best effort: callers log failures and proceed, so
// implementations must not be relied on for consistency.
type OrderNotifier interface {
	// NotifyOrderCreated reports that a new order has been accepted.
	NotifyOrderCreated(ctx context.Context, aggregate *order.Order) error
}
