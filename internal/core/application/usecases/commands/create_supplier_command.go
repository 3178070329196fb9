package commands

import (
	"errors"
	"strings"

	"procurement/internal/pkg/guard"
)

var (
	ErrCreateSupplierCommandIsNotConstructed = errors.New(
		"CreateSupplierCommand must be created via NewCreateSupplierCommand constructor",
	)
	ErrSupplierNameIsRequired = errors.New("supplier name is required")
)

// CreateSupplierCommand represents a request to register a new supplier.
//
// Example:
//
//	cmd, err := NewCreateSupplierCommand("Acme Industrial", "orders@acme.example")
//	if err != nil {
//	    return fmt.Errorf("invalid supplier data: %w", err)
//	}
//
//	handler := NewCreateSupplierCommandHandler(uowFactory)
//	supplierID, err := handler.Handle(ctx, cmd)
type CreateSupplierCommand struct { //nolint:recvcheck //using for validation
	name         string
	contactEmail string

	guard guard.ConstructorGuard
}

// NewCreateSupplierCommand creates a command to register a new supplier.
// Validates that the name is not blank; the contact email is optional and
// checked by the domain on construction.
func NewCreateSupplierCommand(name string, contactEmail string) (CreateSupplierCommand, error) {
	supplierCommand := CreateSupplierCommand{
		contactEmail: contactEmail,
		guard:        guard.NewConstructorGuard(),
	}

	if err := supplierCommand.setName(name); err != nil {
		return CreateSupplierCommand{}, err
	}

	return supplierCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateSupplierCommandIsNotConstructed if validation fails.
func (c CreateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplierCommandIsNotConstructed)
}

// Name returns the supplier name.
func (c CreateSupplierCommand) Name() string {
	return c.name
}

// ContactEmail returns the optional supplier contact address.
func (c CreateSupplierCommand) ContactEmail() string {
	return c.contactEmail
}

func (c *CreateSupplierCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrSupplierNameIsRequired
	}

	c.name = name
	return nil
}
