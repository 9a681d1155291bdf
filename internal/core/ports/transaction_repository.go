// Package ports defines the persistence contracts of the order lifecycle
// service. These interfaces sit between the application layer and the storage
// adapters, enabling dependency inversion and testability; any store that can
// serialize read-modify-write per transaction id can implement them.
package ports

import (
	"context"

	"assetflow/internal/core/domain/model/transaction"
)

// TransactionRepository is the persistence contract for transaction records
// and their history ledger. Implementations must surface storage failures
// verbatim; the engine propagates them without retrying or masking.
type TransactionRepository interface {
	// Add persists a new record together with its first ledger entry as one
	// atomic unit. A duplicate transaction id must be rejected by the store's
	// primary key; that violation is the collision backstop.
	Add(ctx context.Context, aggregate *transaction.Transaction) error

	// Update persists a mutated record and, when newEntry is non-nil, appends
	// it to the ledger — both as one atomic unit. A failure leaves record and
	// ledger unchanged.
	Update(ctx context.Context, aggregate *transaction.Transaction, newEntry *transaction.HistoryEntry) error

	// Get retrieves a record by id, including its full ordered history.
	// Returns ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id transaction.ID) (*transaction.Transaction, error)

	// GetHistory retrieves the ledger of a record, ordered ascending by
	// creation time.
	GetHistory(ctx context.Context, id transaction.ID) ([]transaction.HistoryEntry, error)

	// GetAllInProcessingStatus retrieves every record still walking its state
	// machine. Used by the auto-progression job.
	GetAllInProcessingStatus(ctx context.Context) ([]*transaction.Transaction, error)
}
