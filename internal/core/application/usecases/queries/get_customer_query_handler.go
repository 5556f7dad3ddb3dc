package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerQueryHandler fetches a single customer from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single-customer lookups.
// Requires a GORM database connection for query execution.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ErrObjectNotFound when no customer matches the identifier.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			chat_handle,
			address,
			created_at,
			updated_at
		FROM customers
		WHERE id = ?
		LIMIT 1
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return CustomerResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CustomerResponse{}, err
		}
		return CustomerResponse{}, errs.NewObjectNotFoundError("customer", query.CustomerID())
	}

	return scanCustomerRow(rows)
}
