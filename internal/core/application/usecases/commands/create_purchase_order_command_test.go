package commands_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePurchaseOrderCommand_ValidInput(t *testing.T) {
	supplierID := kernel.NewUUID()
	orderDate := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	cmd, err := commands.NewCreatePurchaseOrderCommand(supplierID, kernel.EUR, orderDate)
	require.NoError(t, err)
	assert.Equal(t, supplierID, cmd.SupplierID())
	assert.Equal(t, kernel.EUR, cmd.Currency())
	assert.Equal(t, orderDate, cmd.OrderDate())
}

func TestNewCreatePurchaseOrderCommand_ZeroOrderDateAllowed(t *testing.T) {
	cmd, err := commands.NewCreatePurchaseOrderCommand(kernel.NewUUID(), kernel.USD, time.Time{})
	require.NoError(t, err)
	assert.True(t, cmd.OrderDate().IsZero())
}

func TestNewCreatePurchaseOrderCommand_InvalidSupplierID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreatePurchaseOrderCommand(invalidID, kernel.USD, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreatePurchaseOrderCommand_InvalidCurrency(t *testing.T) {
	_, err := commands.NewCreatePurchaseOrderCommand(kernel.NewUUID(), kernel.Currency("XXX"), time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currency is invalid")
}

func TestCreatePurchaseOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreatePurchaseOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreatePurchaseOrderCommandIsNotConstructed)
}
