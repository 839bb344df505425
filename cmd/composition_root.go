package cmd

import (
	"log/slog"

	"pizzaparty/internal/adapters/out/postgres"
	"pizzaparty/internal/core/application/usecases/commands"
	"pizzaparty/internal/core/application/usecases/queries"
	"pizzaparty/internal/core/domain/services"
	"pizzaparty/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	// codeGenerator carries the daily sequence counter and must stay a
	// singleton for the life of the process.
	codeGenerator *services.CodeGenerator

	// takeChargeHandler owns the lock serializing preparation slot claims,
	// so a single instance serves all requests.
	takeChargeHandler commands.TakeChargeCommandHandler
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	uowFactory := *postgres.NewGormUnitOfWorkFactory(gormDB)

	root := CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    uowFactory,
		codeGenerator: services.NewCodeGenerator(),
	}
	root.takeChargeHandler = commands.NewTakeChargeCommandHandler(root.orderUoWFactory())

	return root
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.codeGenerator)
}

func (c *CompositionRoot) CreateTakeChargeCommandHandler() commands.TakeChargeCommandHandler {
	return c.takeChargeHandler
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetWaitingOrdersQueryHandler() queries.GetWaitingOrdersQueryHandler {
	return queries.NewGetWaitingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByCodeQueryHandler() queries.GetOrderByCodeQueryHandler {
	return queries.NewGetOrderByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetWaitingOrdersQueryHandler(),
		&c.uowFactory,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
