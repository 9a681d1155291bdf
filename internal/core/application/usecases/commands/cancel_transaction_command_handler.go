package commands

import (
	"context"
)

// CancelTransactionCommandHandler handles owner-initiated withdrawal.
type CancelTransactionCommandHandler struct {
	uowFactory TransactionUoWFactory
}

// NewCancelTransactionCommandHandler creates a handler for order withdrawal.
func NewCancelTransactionCommandHandler(
	uowFactory TransactionUoWFactory,
) CancelTransactionCommandHandler {
	return CancelTransactionCommandHandler{uowFactory: uowFactory}
}

// Handle processes the cancel command.
func (h *CancelTransactionCommandHandler) Handle(ctx context.Context, cmd CancelTransactionCommand) error {
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

	entry, err := aggregate.Cancel(cmd.By())
	if err != nil {
		return err
	}

	if err = uow.TransactionRepository().Update(ctx, aggregate, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
