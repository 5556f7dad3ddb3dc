package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves a single customer by identifier.
type GetCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query to fetch one customer.
// Validates that the customer ID is a valid UUID.
func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	query := GetCustomerQuery{guard: guard.NewConstructorGuard()}

	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	query.customerID = customerID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerQueryIsNotConstructed if validation fails.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer to fetch.
func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}
