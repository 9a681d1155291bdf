// Package queries contains the read side of the service. Query handlers go
// straight to the database with raw SQL, bypassing aggregates and the unit of
// work: reads take no locks and mutate nothing.
package queries

import (
	"errors"
	"time"

	"assetflow/internal/core/domain/model/actor"
	"assetflow/internal/core/domain/model/kernel"
	"assetflow/internal/core/domain/model/transaction"
	"assetflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetTransactionQueryIsNotConstructed = errors.New(
	"GetTransactionQuery must be created via NewGetTransactionQuery constructor",
)

// GetTransactionQuery retrieves a single order with its full history ledger.
// Investors may only read their own orders; registrars read any.
type GetTransactionQuery struct {
	transactionID transaction.ID
	by            actor.Actor

	guard guard.ConstructorGuard
}

// NewGetTransactionQuery creates a validated single-order query.
func NewGetTransactionQuery(transactionID transaction.ID, by actor.Actor) (GetTransactionQuery, error) {
	if err := transactionID.Validate(); err != nil {
		return GetTransactionQuery{}, err
	}
	if err := by.Validate(); err != nil {
		return GetTransactionQuery{}, err
	}

	return GetTransactionQuery{
		transactionID: transactionID,
		by:            by,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionQueryIsNotConstructed)
}

// TransactionID returns the id of the order to read.
func (q GetTransactionQuery) TransactionID() transaction.ID {
	return q.transactionID
}

// By returns the caller issuing the query.
func (q GetTransactionQuery) By() actor.Actor {
	return q.by
}

// TransactionResponse is the read model of one order.
type TransactionResponse struct {
	ID                    string
	OwnerID               kernel.UUID
	AssetClass            string
	AssetName             string
	Amount                decimal.Decimal
	Direction             string
	CurrentStateID        string
	Status                string
	FailureReason         string
	EstimatedCompletionAt time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	History               []HistoryEntryResponse
}

// HistoryEntryResponse is the read model of one ledger line.
type HistoryEntryResponse struct {
	StateID   string
	Message   string
	Timestamp time.Time
}
