package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSuppliersQueryHandler retrieves all supplier records from the database.
// Uses direct SQL queries for read performance in the CQRS pattern.
type GetSuppliersQueryHandler struct {
	db *gorm.DB
}

// NewGetSuppliersQueryHandler creates a handler for supplier retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetSuppliersQueryHandler(db *gorm.DB) GetSuppliersQueryHandler {
	return GetSuppliersQueryHandler{db: db}
}

// Handle executes the query to retrieve all suppliers.
// Returns a slice of supplier read models sorted by name.
func (h GetSuppliersQueryHandler) Handle(
	ctx context.Context,
	query GetSuppliersQuery,
) ([]GetSuppliersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	suppliers := make([]GetSuppliersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			contact_email
		FROM suppliers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var supplierResp GetSuppliersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &supplierResp.Name, &supplierResp.ContactEmail); err != nil {
			return nil, err
		}

		if supplierResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		suppliers = append(suppliers, supplierResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return suppliers, nil
}
