package queries

import (
	"context"
	"database/sql"
	"errors"

	"assetflow/internal/core/domain/model/kernel"
	"assetflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTransactionQueryHandler reads one order and its ledger from the database.
type GetTransactionQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionQueryHandler creates a handler for single-order reads.
func NewGetTransactionQueryHandler(db *gorm.DB) GetTransactionQueryHandler {
	return GetTransactionQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError for unknown ids, and
// the same ObjectNotFoundError when an investor reads someone else's order:
// investors only see their own rows, so foreign ids must be indistinguishable
// from nonexistent ones. The ledger comes back ascending by append order.
func (h GetTransactionQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionQuery,
) (TransactionResponse, error) {
	if err := query.Validate(); err != nil {
		return TransactionResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE transaction_id = ?
	`, query.TransactionID().String()).Row()

	var resp TransactionResponse
	var ownerID uuid.UUID
	var amount decimal.Decimal

	err := row.Scan(
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
	if errors.Is(err, sql.ErrNoRows) {
		return TransactionResponse{}, errs.NewObjectNotFoundError(
			"transactionId", query.TransactionID().String())
	}
	if err != nil {
		return TransactionResponse{}, err
	}

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return TransactionResponse{}, err
	}
	resp.OwnerID = owner
	resp.Amount = amount

	by := query.By()
	if !by.IsRegistrar() && !owner.IsEqual(by.ID()) {
		return TransactionResponse{}, errs.NewObjectNotFoundError(
			"transactionId", query.TransactionID().String())
	}

	history, err := h.loadHistory(ctx, resp.ID)
	if err != nil {
		return TransactionResponse{}, err
	}
	resp.History = history

	return resp, nil
}

func (h GetTransactionQueryHandler) loadHistory(
	ctx context.Context,
	transactionID string,
) ([]HistoryEntryResponse, error) {
	entries := make([]HistoryEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			state_id,
			message,
			created_at
		FROM state_history
		WHERE transaction_id = ?
		ORDER BY id
	`, transactionID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry HistoryEntryResponse
		if err = rows.Scan(&entry.StateID, &entry.Message, &entry.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
