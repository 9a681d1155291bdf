package commands

import (
	"context"
)

// FailTransactionCommandHandler handles order rejection.
type FailTransactionCommandHandler struct {
	uowFactory TransactionUoWFactory
}

// NewFailTransactionCommandHandler creates a handler for order rejection.
func NewFailTransactionCommandHandler(
	uowFactory TransactionUoWFactory,
) FailTransactionCommandHandler {
	return FailTransactionCommandHandler{uowFactory: uowFactory}
}

// Handle processes the fail command.
func (h *FailTransactionCommandHandler) Handle(ctx context.Context, cmd FailTransactionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.TransactionRepository().Get(ctx, cmd.TransactionID())
	if err != nil {
		return err
	}

	entry, err := aggregate.Fail(cmd.By(), cmd.Reason())
	if err != nil {
		return err
	}

	if err = uow.TransactionRepository().Update(ctx, aggregate, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
