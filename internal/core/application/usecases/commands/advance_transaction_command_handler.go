package commands

import (
	"context"

	"assetflow/internal/core/domain/model/statemachine"
	"assetflow/internal/core/domain/model/transaction"
)

// AdvanceTransactionCommandHandler handles single-step progression. The
// aggregate decides the next state from its asset class's machine; the handler
// only choreographs load, mutate, and atomic persist of record plus entry.
type AdvanceTransactionCommandHandler struct {
	uowFactory TransactionUoWFactory
	catalog    statemachine.Catalog
}

// NewAdvanceTransactionCommandHandler creates a handler for order advancement.
func NewAdvanceTransactionCommandHandler(
	uowFactory TransactionUoWFactory,
	catalog statemachine.Catalog,
) AdvanceTransactionCommandHandler {
	return AdvanceTransactionCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the advance command and returns the updated record.
func (h *AdvanceTransactionCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceTransactionCommand,
) (*transaction.Transaction, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.TransactionRepository().Get(ctx, cmd.TransactionID())
	if err != nil {
		return nil, err
	}

	def, err := h.catalog.DefinitionFor(aggregate.AssetClass())
	if err != nil {
		return nil, err
	}

	entry, err := aggregate.Advance(def, cmd.By())
	if err != nil {
		return nil, err
	}

	if err = uow.TransactionRepository().Update(ctx, aggregate, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
