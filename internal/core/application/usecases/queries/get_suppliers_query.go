package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetSuppliersQueryIsNotConstructed = errors.New(
	"GetSuppliersQuery must be created via NewGetSuppliersQuery constructor",
)

// GetSuppliersQuery retrieves all registered suppliers.
type GetSuppliersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSuppliersQuery creates a query to retrieve all suppliers.
func NewGetSuppliersQuery() GetSuppliersQuery {
	return GetSuppliersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSuppliersQueryIsNotConstructed if validation fails.
func (q GetSuppliersQuery) Validate() error {
	return q.guard.Validate(ErrGetSuppliersQueryIsNotConstructed)
}

// GetSuppliersQueryResponse represents one supplier in the read model.
type GetSuppliersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	ContactEmail string
}
