// Package queries contains read operations over the dispatch store.
// Implements the Query pattern for the read side of the CQRS architecture:
// raw SQL projections into plain response structs, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, optionally filtered by status.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(nil)              // all orders
//	pending := order.Pending
//	query, _ = NewGetOrdersQuery(&pending)          // pending only
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders.
// A nil status means no filtering; a provided status must be a known value.
func NewGetOrdersQuery(status *order.Status) (GetOrdersQuery, error) {
	query := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		query.status = status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderResponse is the read model shared by the order queries.
type OrderResponse struct {
	ID         kernel.UUID
	OrderID    string
	CustomerID kernel.UUID
	DriverID   *kernel.UUID
	Address    string
	Location   kernel.Location
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
