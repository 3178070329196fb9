package cmd

import (
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateSupplierCommandHandler() commands.CreateSupplierCommandHandler {
	var f commands.SupplierUoWFactory = FuncSupplierUoWFactory(func() commands.SupplierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSupplierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePurchaseOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitPurchaseOrderCommandHandler() commands.SubmitPurchaseOrderCommandHandler {
	return commands.NewSubmitPurchaseOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApprovePurchaseOrderCommandHandler() commands.ApprovePurchaseOrderCommandHandler {
	return commands.NewApprovePurchaseOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateShipPurchaseOrderCommandHandler() commands.ShipPurchaseOrderCommandHandler {
	return commands.NewShipPurchaseOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompletePurchaseOrderCommandHandler() commands.CompletePurchaseOrderCommandHandler {
	return commands.NewCompletePurchaseOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelPurchaseOrderCommandHandler() commands.CancelPurchaseOrderCommandHandler {
	return commands.NewCancelPurchaseOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleDraftsCommandHandler() commands.CancelStaleDraftsCommandHandler {
	return commands.NewCancelStaleDraftsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetPurchaseOrderQueryHandler() queries.GetPurchaseOrderQueryHandler {
	return queries.NewGetPurchaseOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenPurchaseOrdersQueryHandler() queries.GetOpenPurchaseOrdersQueryHandler {
	return queries.NewGetOpenPurchaseOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSuppliersQueryHandler() queries.GetSuppliersQueryHandler {
	return queries.NewGetSuppliersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncSupplierUoWFactory func() commands.SupplierUoW

func (f FuncSupplierUoWFactory) Create() commands.SupplierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
