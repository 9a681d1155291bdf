package queries

import (
	"errors"

	"assetflow/internal/core/domain/model/actor"
	"assetflow/internal/pkg/guard"
)

var ErrGetTransactionsQueryIsNotConstructed = errors.New(
	"GetTransactionsQuery must be created via NewGetTransactionsQuery constructor",
)

// GetTransactionsQuery lists orders visible to the caller: registrars see the
// whole book, investors see only the orders they own. Results omit the history
// ledger; it is fetched per order via GetTransactionQuery.
type GetTransactionsQuery struct {
	by actor.Actor

	guard guard.ConstructorGuard
}

// NewGetTransactionsQuery creates a validated listing query.
func NewGetTransactionsQuery(by actor.Actor) (GetTransactionsQuery, error) {
	if err := by.Validate(); err != nil {
		return GetTransactionsQuery{}, err
	}

	return GetTransactionsQuery{
		by:    by,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionsQueryIsNotConstructed)
}

// By returns the caller issuing the query.
func (q GetTransactionsQuery) By() actor.Actor {
	return q.by
}
