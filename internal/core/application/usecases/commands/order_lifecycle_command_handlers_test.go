package commands_test

import (
	"context"
	"errors"
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectTransition wires the standard load-mutate-persist sequence on the mocks.
func expectTransition(
	t *testing.T, ctx context.Context, po *order.PurchaseOrder,
) (*MockPurchaseOrderRepository, *MockOrderUoW, *MockOrderUoWFactory) {
	t.Helper()

	repo := new(MockPurchaseOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, po.ID()).Return(po, nil).Once(),
		repo.On("Update", mock.Anything, po).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return repo, uow, factory
}

func TestSubmitPurchaseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	po := newDraftOrder(t)
	cmd, _ := commands.NewSubmitPurchaseOrderCommand(po.ID())

	repo, uow, factory := expectTransition(t, ctx, po)

	h := commands.NewSubmitPurchaseOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Submitted, po.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSubmitPurchaseOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	po := newDraftOrder(t)
	require.NoError(t, po.Submit()) // already submitted
	cmd, _ := commands.NewSubmitPurchaseOrderCommand(po.ID())

	repo := new(MockPurchaseOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, po.ID()).Return(po, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitPurchaseOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Equal(t, order.Submitted, po.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApprovePurchaseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	po := newDraftOrder(t)
	require.NoError(t, po.Submit())
	cmd, _ := commands.NewApprovePurchaseOrderCommand(po.ID())

	repo, uow, factory := expectTransition(t, ctx, po)

	h := commands.NewApprovePurchaseOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Approved, po.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestShipPurchaseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	po := newDraftOrder(t)
	require.NoError(t, po.Submit())
	require.NoError(t, po.Approve())
	cmd, _ := commands.NewShipPurchaseOrderCommand(po.ID())

	repo, uow, factory := expectTransition(t, ctx, po)

	h := commands.NewShipPurchaseOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Shipped, po.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompletePurchaseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	po := newDraftOrder(t)
	require.NoError(t, po.Submit())
	require.NoError(t, po.Approve())
	require.NoError(t, po.Ship())
	cmd, _ := commands.NewCompletePurchaseOrderCommand(po.ID())

	repo, uow, factory := expectTransition(t, ctx, po)

	h := commands.NewCompletePurchaseOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Completed, po.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelPurchaseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	po := newDraftOrder(t)
	cmd, _ := commands.NewCancelPurchaseOrderCommand(po.ID())

	repo, uow, factory := expectTransition(t, ctx, po)

	h := commands.NewCancelPurchaseOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Cancelled, po.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelPurchaseOrderCommandHandler_Handle_CompletedOrder(t *testing.T) {
	ctx := t.Context()
	po := newDraftOrder(t)
	require.NoError(t, po.Submit())
	require.NoError(t, po.Approve())
	require.NoError(t, po.Ship())
	require.NoError(t, po.Complete())
	cmd, _ := commands.NewCancelPurchaseOrderCommand(po.ID())

	repo := new(MockPurchaseOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, po.ID()).Return(po, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelPurchaseOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Equal(t, order.Completed, po.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitPurchaseOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSubmitPurchaseOrderCommand(kernel.NewUUID())

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewSubmitPurchaseOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
