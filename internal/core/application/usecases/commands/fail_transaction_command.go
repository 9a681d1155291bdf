package commands

import (
	"errors"

	"assetflow/internal/core/domain/model/actor"
	"assetflow/internal/core/domain/model/transaction"
	"assetflow/internal/pkg/guard"
)

// ErrFailTransactionCommandIsNotConstructed is returned when the command was
// not built via NewFailTransactionCommand.
var ErrFailTransactionCommandIsNotConstructed = errors.New(
	"FailTransactionCommand must be created via NewFailTransactionCommand constructor",
)

// FailTransactionCommand rejects an order. The reason may be empty; the
// aggregate substitutes its default.
type FailTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID transaction.ID
	by            actor.Actor
	reason        string

	guard guard.ConstructorGuard
}

// NewFailTransactionCommand creates a validated fail command.
func NewFailTransactionCommand(
	transactionID transaction.ID,
	by actor.Actor,
	reason string,
) (FailTransactionCommand, error) {
	if err := transactionID.Validate(); err != nil {
		return FailTransactionCommand{}, err
	}
	if err := by.Validate(); err != nil {
		return FailTransactionCommand{}, err
	}

	return FailTransactionCommand{
		transactionID: transactionID,
		by:            by,
		reason:        reason,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FailTransactionCommand) Validate() error {
	return c.guard.Validate(ErrFailTransactionCommandIsNotConstructed)
}

// TransactionID returns the id of the order to reject.
func (c FailTransactionCommand) TransactionID() transaction.ID {
	return c.transactionID
}

// By returns the caller requesting the rejection.
func (c FailTransactionCommand) By() actor.Actor {
	return c.by
}

// Reason returns the caller-supplied rejection reason, possibly empty.
func (c FailTransactionCommand) Reason() string {
	return c.reason
}
