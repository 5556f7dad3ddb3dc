package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler lists customers from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer listing.
// Requires a GORM database connection for query execution.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query. Results come back newest first.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			name,
			phone,
			chat_handle,
			address,
			created_at,
			updated_at
		FROM customers
		WHERE 1=1
	`
	args := make([]any, 0, 2)
	if query.Phone() != nil {
		sqlQuery += ` AND phone = ?`
		args = append(args, *query.Phone())
	}
	if query.ChatHandle() != nil {
		sqlQuery += ` AND chat_handle = ?`
		args = append(args, *query.ChatHandle())
	}
	sqlQuery += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
		resp, scanErr := scanCustomerRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// scanCustomerRow reads one row of the shared customer projection.
// Column order must match the SELECT lists of the customer queries.
func scanCustomerRow(rows *sql.Rows) (CustomerResponse, error) {
	var resp CustomerResponse
	var id uuid.UUID
	var chatHandle sql.NullInt64
	var address sql.NullString

	if err := rows.Scan(
		&id,
		&resp.Name,
		&resp.Phone,
		&chatHandle,
		&address,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return CustomerResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerResponse{}, err
	}
	resp.ID = customerID

	if chatHandle.Valid {
		handle := chatHandle.Int64
		resp.ChatHandle = &handle
	}
	if address.Valid {
		addr := address.String
		resp.Address = &addr
	}

	return resp, nil
}
