// Package supplierrepo provides data transfer objects and mapping functions
// for supplier persistence.
package supplierrepo

import (
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"

	"github.com/google/uuid"
)

// SupplierDTO represents the database structure for persisting suppliers.
type SupplierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	ContactEmail string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for supplier entities.
// Overrides GORM's default naming convention to use "suppliers".
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// fromDomain converts a supplier entity to its database representation.
func fromDomain(s *supplier.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:           s.ID().Bytes(),
		Name:         s.Name(),
		ContactEmail: s.ContactEmail(),
	}
}

// toDomain converts a database DTO to a supplier entity using RestoreSupplier.
func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return supplier.RestoreSupplier(id, dto.Name, dto.ContactEmail)
}
