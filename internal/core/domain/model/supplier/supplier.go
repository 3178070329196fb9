package supplier

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// Domain errors for supplier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a supplier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSupplierIsNotConstructed is returned when using an improperly initialized Supplier.
	ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")
)

// Supplier represents a vendor that purchase orders are placed with.
// It is a passive entity: it carries identity and contact details but no
// behavior of its own. Purchase orders reference suppliers by ID.
//
// Business rules:
//   - Supplier must have a valid UUID and a non-empty name
//   - Contact email is optional; when present it must contain an "@"
type Supplier struct {
	// id uniquely identifies the supplier
	id kernel.UUID
	// name is the legal or trading name of the supplier
	name string
	// contactEmail is an optional address used for order correspondence
	contactEmail string
	// guard ensures the supplier was properly constructed
	guard guard.ConstructorGuard
}

// NewSupplier creates a new Supplier with a freshly generated identifier.
// This is the only way to create a valid Supplier instance.
//
// Parameters:
//   - name: Legal or trading name (must be non-empty)
//   - contactEmail: Optional contact address; empty string means none
//
// Returns:
//   - *Supplier: A fully initialized supplier
//   - error: Validation error if any parameter is invalid
func NewSupplier(name string, contactEmail string) (*Supplier, error) {
	supplier := &Supplier{
		id:    kernel.NewUUID(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		supplier.setName(name),
		supplier.setContactEmail(contactEmail),
	); err != nil {
		return nil, err
	}

	return supplier, nil
}

// RestoreSupplier reconstructs a Supplier from persistent storage.
// Unlike NewSupplier it accepts an existing identifier and re-validates
// every field.
func RestoreSupplier(id kernel.UUID, name string, contactEmail string) (*Supplier, error) {
	supplier := &Supplier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		supplier.setID(id),
		supplier.setName(name),
		supplier.setContactEmail(contactEmail),
	); err != nil {
		return nil, err
	}

	return supplier, nil
}

// Validate checks if the Supplier was properly constructed.
// The zero value of Supplier is invalid and will fail this validation.
func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

// IsEqual compares two suppliers by their unique identifiers.
func (s *Supplier) IsEqual(other *Supplier) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the supplier's name.
func (s *Supplier) Name() string {
	return s.name
}

// ContactEmail returns the supplier's contact address, or an empty string
// when none was provided.
func (s *Supplier) ContactEmail() string {
	return s.contactEmail
}

// setID sets the supplier's unique identifier with validation.
// This is an internal setter used during restoration.
func (s *Supplier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

// setName sets the supplier's name with validation.
// This is an internal setter used during construction.
func (s *Supplier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

// setContactEmail sets the optional contact address with validation.
// This is an internal setter used during construction.
func (s *Supplier) setContactEmail(contactEmail string) error {
	if contactEmail == "" {
		return nil
	}

	if !strings.Contains(contactEmail, "@") {
		return errs.NewValueIsInvalidError("contactEmail")
	}

	s.contactEmail = contactEmail
	return nil
}
