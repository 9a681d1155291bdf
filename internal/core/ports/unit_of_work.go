package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control for the read-modify-write sequence of a single engine
// operation. Serialization of concurrent writers on the same transaction id
// comes from the repository's Get taking a row lock inside this transaction,
// not from the transaction alone.
type UnitOfWork interface {
	// Begin starts a new store transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TransactionRepository returns a repository bound to the current
	// transaction started by Begin().
	TransactionRepository() TransactionRepository
}
