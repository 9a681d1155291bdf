package queries

import (
	"context"

	"assetflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTransactionsQueryHandler lists orders from the database, scoped by the
// caller's role.
type GetTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionsQueryHandler creates a handler for order listings.
func NewGetTransactionsQueryHandler(db *gorm.DB) GetTransactionsQueryHandler {
	return GetTransactionsQueryHandler{db: db}
}

// Handle executes the listing. Orders come back newest first.
func (h GetTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionsQuery,
) ([]TransactionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			transaction_id,
			owner_id,
			asset_class,
			asset_name,
			amount,
			direction,
			current_state_id,
			status,
			failure_reason,
			estimated_completion_at,
			created_at,
			updated_at
		FROM transactions
	`

	tx := h.db.WithContext(ctx)
	by := query.By()

	var rowsQuery *gorm.DB
	if by.IsRegistrar() {
		rowsQuery = tx.Raw(baseQuery + " ORDER BY created_at DESC")
	} else {
		rowsQuery = tx.Raw(baseQuery+" WHERE owner_id = ? ORDER BY created_at DESC",
			by.ID().String())
	}

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]TransactionResponse, 0)

	for rows.Next() {
		var resp TransactionResponse
		var ownerID uuid.UUID
		var amount decimal.Decimal

		err = rows.Scan(
			&resp.ID,
			&ownerID,
			&resp.AssetClass,
			&resp.AssetName,
			&amount,
			&resp.Direction,
			&resp.CurrentStateID,
			&resp.Status,
			&resp.FailureReason,
			&resp.EstimatedCompletionAt,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		owner, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OwnerID = owner
		resp.Amount = amount

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
