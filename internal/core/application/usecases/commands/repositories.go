// Package commands contains the write operations of the transition engine.
// Implements the Command pattern for the CQRS write side. Every command
// follows the same choreography: validate, begin a unit of work, mutate the
// aggregate, persist record and ledger entry atomically, commit. The first
// violated precondition short-circuits with its typed error and no state
// change occurs.
package commands

import (
	"context"

	"assetflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure the record mutation and the ledger append commit
// or roll back together.
type (
	// TxManager handles the store transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TransactionRepoFactory provides access to the transaction repository
	// within a unit of work.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// TransactionUoW manages transactions for engine operations.
	TransactionUoW interface {
		TxManager
		TransactionRepoFactory
	}

	// TransactionUoWFactory creates new unit of work instances, one per
	// handled command.
	TransactionUoWFactory interface {
		Create() TransactionUoW
	}
)
