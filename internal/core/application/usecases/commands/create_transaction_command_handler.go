package commands

import (
	"context"

	"assetflow/internal/core/domain/model/statemachine"
	"assetflow/internal/core/domain/model/transaction"
)

// CreateTransactionCommandHandler handles order creation. Resolves the state
// machine for the order's asset class, checks the configured amount bounds,
// seeds the aggregate at the machine's first state, and persists record plus
// initial ledger entry as one atomic unit.
type CreateTransactionCommandHandler struct {
	uowFactory TransactionUoWFactory
	catalog    statemachine.Catalog
	bounds     transaction.Bounds
}

// NewCreateTransactionCommandHandler creates a handler for order creation.
// The bounds come from deployment configuration, not business constants.
func NewCreateTransactionCommandHandler(
	uowFactory TransactionUoWFactory,
	catalog statemachine.Catalog,
	bounds transaction.Bounds,
) CreateTransactionCommandHandler {
	return CreateTransactionCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		bounds:     bounds,
	}
}

// Handle processes the creation command and returns the persisted record.
func (h *CreateTransactionCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTransactionCommand,
) (*transaction.Transaction, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.bounds.Check(cmd.Amount()); err != nil {
		return nil, err
	}

	def, err := h.catalog.DefinitionFor(cmd.AssetClass())
	if err != nil {
		return nil, err
	}

	aggregate, err := transaction.NewTransaction(
		cmd.OwnerID(), def, cmd.AssetName(), cmd.Amount(), cmd.Direction())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TransactionRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
