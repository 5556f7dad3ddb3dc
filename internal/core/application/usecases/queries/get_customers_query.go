package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves customers, optionally filtered by phone number
// or chat handle. Both filters are exact matches; combined they narrow the
// result further.
type GetCustomersQuery struct { //nolint:recvcheck //using for validation
	phone      *string
	chatHandle *int64

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query to list customers.
// Nil filters mean no filtering.
func NewGetCustomersQuery(phone *string, chatHandle *int64) (GetCustomersQuery, error) {
	query := GetCustomersQuery{guard: guard.NewConstructorGuard()}

	if phone != nil && *phone == "" {
		return GetCustomersQuery{}, errs.NewValueIsRequiredError("phone")
	}
	query.phone = phone
	query.chatHandle = chatHandle

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomersQueryIsNotConstructed if validation fails.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// Phone returns the optional phone filter.
func (q GetCustomersQuery) Phone() *string {
	return q.phone
}

// ChatHandle returns the optional chat handle filter.
func (q GetCustomersQuery) ChatHandle() *int64 {
	return q.chatHandle
}

// CustomerResponse is the read model shared by the customer queries.
type CustomerResponse struct {
	ID         kernel.UUID
	Name       string
	Phone      string
	ChatHandle *int64
	Address    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
