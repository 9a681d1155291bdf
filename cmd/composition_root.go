package cmd

import (
	"assetflow/internal/adapters/out/storage"
	"assetflow/internal/core/application/usecases/commands"
	"assetflow/internal/core/application/usecases/queries"
	"assetflow/internal/core/domain/model/statemachine"
	"assetflow/internal/core/domain/model/transaction"

	"gorm.io/gorm"
)

// CompositionRoot wires the storage adapter, the state machine catalog, and
// the configured bounds into the application handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory storage.GormUnitOfWorkFactory
	catalog    statemachine.Catalog
	bounds     transaction.Bounds
}

func NewCompositionRoot(gormDB *gorm.DB, bounds transaction.Bounds) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *storage.NewGormUnitOfWorkFactory(gormDB),
		catalog:    statemachine.DefaultCatalog(),
		bounds:     bounds,
	}
}

func (c *CompositionRoot) transactionUoWFactory() commands.TransactionUoWFactory {
	return FuncTransactionUoWFactory(func() commands.TransactionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTransactionCommandHandler() commands.CreateTransactionCommandHandler {
	return commands.NewCreateTransactionCommandHandler(c.transactionUoWFactory(), c.catalog, c.bounds)
}

func (c *CompositionRoot) CreateAdvanceTransactionCommandHandler() commands.AdvanceTransactionCommandHandler {
	return commands.NewAdvanceTransactionCommandHandler(c.transactionUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateFailTransactionCommandHandler() commands.FailTransactionCommandHandler {
	return commands.NewFailTransactionCommandHandler(c.transactionUoWFactory())
}

func (c *CompositionRoot) CreateCancelTransactionCommandHandler() commands.CancelTransactionCommandHandler {
	return commands.NewCancelTransactionCommandHandler(c.transactionUoWFactory())
}

func (c *CompositionRoot) CreateGetTransactionQueryHandler() queries.GetTransactionQueryHandler {
	return queries.NewGetTransactionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionsQueryHandler() queries.GetTransactionsQueryHandler {
	return queries.NewGetTransactionsQueryHandler(c.gormDB)
}

// TransactionUoWFactory exposes the factory for background jobs.
func (c *CompositionRoot) TransactionUoWFactory() commands.TransactionUoWFactory {
	return c.transactionUoWFactory()
}

type FuncTransactionUoWFactory func() commands.TransactionUoW

func (f FuncTransactionUoWFactory) Create() commands.TransactionUoW {
	return f()
}
