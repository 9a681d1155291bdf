package http

import (
	"time"

	"assetflow/internal/core/application/usecases/queries"
	"assetflow/internal/core/domain/model/transaction"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /api/v1/transactions.
type CreateTransactionRequest struct {
	AssetClass string          `json:"assetClass"`
	AssetName  string          `json:"assetName"`
	Amount     decimal.Decimal `json:"amount"`
	Direction  string          `json:"direction"`
}

// FailTransactionRequest is the body of POST /api/v1/transactions/:id/fail.
// The reason is optional.
type FailTransactionRequest struct {
	Reason string `json:"reason"`
}

// TransactionResponse is the JSON shape of one order.
type TransactionResponse struct {
	ID                    string                 `json:"id"`
	OwnerID               string                 `json:"ownerId"`
	AssetClass            string                 `json:"assetClass"`
	AssetName             string                 `json:"assetName"`
	Amount                decimal.Decimal        `json:"amount"`
	Direction             string                 `json:"direction"`
	CurrentState          string                 `json:"currentState"`
	Status                string                 `json:"status"`
	FailureReason         string                 `json:"failureReason,omitempty"`
	EstimatedCompletionAt time.Time              `json:"estimatedCompletionAt"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
	History               []HistoryEntryResponse `json:"history,omitempty"`
}

// HistoryEntryResponse is the JSON shape of one ledger line.
type HistoryEntryResponse struct {
	State     string    `json:"state"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func fromAggregate(aggregate *transaction.Transaction) TransactionResponse {
	history := aggregate.History()
	entries := make([]HistoryEntryResponse, 0, len(history))
	for _, entry := range history {
		entries = append(entries, HistoryEntryResponse{
			State:     entry.StateID,
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		})
	}

	return TransactionResponse{
		ID:                    aggregate.ID().String(),
		OwnerID:               aggregate.OwnerID().String(),
		AssetClass:            aggregate.AssetClass().String(),
		AssetName:             aggregate.AssetName(),
		Amount:                aggregate.Amount(),
		Direction:             aggregate.Direction().String(),
		CurrentState:          aggregate.CurrentStateID(),
		Status:                aggregate.Status().String(),
		FailureReason:         aggregate.FailureReason(),
		EstimatedCompletionAt: aggregate.EstimatedCompletionAt(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		History:               entries,
	}
}

func fromReadModel(model queries.TransactionResponse) TransactionResponse {
	entries := make([]HistoryEntryResponse, 0, len(model.History))
	for _, entry := range model.History {
		entries = append(entries, HistoryEntryResponse{
			State:     entry.StateID,
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		})
	}

	return TransactionResponse{
		ID:                    model.ID,
		OwnerID:               model.OwnerID.String(),
		AssetClass:            model.AssetClass,
		AssetName:             model.AssetName,
		Amount:                model.Amount,
		Direction:             model.Direction,
		CurrentState:          model.CurrentStateID,
		Status:                model.Status,
		FailureReason:         model.FailureReason,
		EstimatedCompletionAt: model.EstimatedCompletionAt,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
		History:               entries,
	}
}
