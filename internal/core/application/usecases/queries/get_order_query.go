package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by reference (external order_id or
// internal id).
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	ref order.Ref

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch one order.
// Validates that the reference carries a value.
func NewGetOrderQuery(ref order.Ref) (GetOrderQuery, error) {
	query := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := ref.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	query.ref = ref

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Ref returns the order reference.
func (q GetOrderQuery) Ref() order.Ref {
	return q.ref
}
