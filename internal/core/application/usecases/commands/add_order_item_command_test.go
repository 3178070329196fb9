package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderItemCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()
	unitPrice, _ := kernel.NewMoney(9.99, kernel.USD)

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, 3, unitPrice)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, 3, cmd.Quantity())
	assert.True(t, cmd.UnitPrice().IsEqual(unitPrice))
}

func TestNewAddOrderItemCommand_InvalidOrderID(t *testing.T) {
	unitPrice, _ := kernel.NewMoney(9.99, kernel.USD)
	_, err := commands.NewAddOrderItemCommand(kernel.UUID{}, kernel.NewUUID(), 3, unitPrice)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orderId")
}

func TestNewAddOrderItemCommand_InvalidQuantity(t *testing.T) {
	unitPrice, _ := kernel.NewMoney(9.99, kernel.USD)
	for _, quantity := range []int{0, -5, 1001} {
		_, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), kernel.NewUUID(), quantity, unitPrice)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestNewAddOrderItemCommand_InvalidUnitPrice(t *testing.T) {
	var unitPrice kernel.Money // zero value, should trigger validation error
	_, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), kernel.NewUUID(), 3, unitPrice)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unitPrice")
}

func TestAddOrderItemCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AddOrderItemCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddOrderItemCommandIsNotConstructed)
}
