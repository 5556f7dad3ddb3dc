package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler fetches a single order from the database.
// The reference is matched against the external order_id first; when the raw
// value parses as a UUID it also matches the internal id.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ErrObjectNotFound when no order matches the reference.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	sqlQuery := `
		SELECT
			id,
			order_id,
			customer_id,
			driver_id,
			address,
			lat,
			lng,
			status,
			created_at,
			updated_at
		FROM orders
	`
	args := make([]any, 0, 2)
	if id, ok := query.Ref().AsUUID(); ok {
		sqlQuery += ` WHERE order_id = ? OR id = ?`
		args = append(args, query.Ref().String(), id)
	} else {
		sqlQuery += ` WHERE order_id = ?`
		args = append(args, query.Ref().String())
	}
	sqlQuery += ` LIMIT 1`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.Ref().String())
	}

	return scanOrderRow(rows)
}
