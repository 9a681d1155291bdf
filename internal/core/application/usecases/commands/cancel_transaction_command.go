package commands

import (
	"errors"

	"assetflow/internal/core/domain/model/actor"
	"assetflow/internal/core/domain/model/transaction"
	"assetflow/internal/pkg/guard"
)

// ErrCancelTransactionCommandIsNotConstructed is returned when the command
// was not built via NewCancelTransactionCommand.
var ErrCancelTransactionCommandIsNotConstructed = errors.New(
	"CancelTransactionCommand must be created via NewCancelTransactionCommand constructor",
)

// CancelTransactionCommand withdraws an order on behalf of its owner.
type CancelTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID transaction.ID
	by            actor.Actor

	guard guard.ConstructorGuard
}

// NewCancelTransactionCommand creates a validated cancel command.
func NewCancelTransactionCommand(
	transactionID transaction.ID,
	by actor.Actor,
) (CancelTransactionCommand, error) {
	if err := transactionID.Validate(); err != nil {
		return CancelTransactionCommand{}, err
	}
	if err := by.Validate(); err != nil {
		return CancelTransactionCommand{}, err
	}

	return CancelTransactionCommand{
		transactionID: transactionID,
		by:            by,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTransactionCommand) Validate() error {
	return c.guard.Validate(ErrCancelTransactionCommandIsNotConstructed)
}

// TransactionID returns the id of the order to withdraw.
func (c CancelTransactionCommand) TransactionID() transaction.ID {
	return c.transactionID
}

// By returns the caller requesting the withdrawal.
func (c CancelTransactionCommand) By() actor.Actor {
	return c.by
}
