package commands

import (
	"errors"

	"assetflow/internal/core/domain/model/actor"
	"assetflow/internal/core/domain/model/transaction"
	"assetflow/internal/pkg/guard"
)

// ErrAdvanceTransactionCommandIsNotConstructed is returned when the command
// was not built via NewAdvanceTransactionCommand.
var ErrAdvanceTransactionCommandIsNotConstructed = errors.New(
	"AdvanceTransactionCommand must be created via NewAdvanceTransactionCommand constructor",
)

// AdvanceTransactionCommand moves an order one step forward in its machine.
type AdvanceTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID transaction.ID
	by            actor.Actor

	guard guard.ConstructorGuard
}

// NewAdvanceTransactionCommand creates a validated advance command.
func NewAdvanceTransactionCommand(
	transactionID transaction.ID,
	by actor.Actor,
) (AdvanceTransactionCommand, error) {
	if err := transactionID.Validate(); err != nil {
		return AdvanceTransactionCommand{}, err
	}
	if err := by.Validate(); err != nil {
		return AdvanceTransactionCommand{}, err
	}

	return AdvanceTransactionCommand{
		transactionID: transactionID,
		by:            by,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceTransactionCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceTransactionCommandIsNotConstructed)
}

// TransactionID returns the id of the order to advance.
func (c AdvanceTransactionCommand) TransactionID() transaction.ID {
	return c.transactionID
}

// By returns the caller requesting the advance.
func (c AdvanceTransactionCommand) By() actor.Actor {
	return c.by
}
