// Package transactionrepo persists transaction aggregates and their history
// ledger. The record and the ledger live in separate tables joined by the
// transaction id; ledger rows are insert-only.
package transactionrepo

import (
	"encoding/json"
	"time"

	"assetflow/internal/core/domain/model/kernel"
	"assetflow/internal/core/domain/model/statemachine"
	"assetflow/internal/core/domain/model/transaction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDTO is the database row of one order. The human-readable
// transaction id is the primary key; a duplicate id fails the insert, which is
// the collision backstop for the generated identifiers.
type TransactionDTO struct {
	TransactionID         string          `gorm:"primaryKey;size:40"`
	OwnerID               uuid.UUID       `gorm:"type:uuid;index"`
	AssetClass            string          `gorm:"size:20;index"`
	AssetName             string          `gorm:"size:120"`
	Amount                decimal.Decimal `gorm:"type:numeric(20,4)"`
	Direction             string          `gorm:"size:10"`
	CurrentStateID        string          `gorm:"size:40"`
	Status                string          `gorm:"size:20;index"`
	FailureReason         string
	EstimatedCompletionAt time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	History               []HistoryEntryDTO `gorm:"foreignKey:TransactionID;references:TransactionID"`
}

// TableName overrides GORM's default naming convention.
func (TransactionDTO) TableName() string {
	return "transactions"
}

// HistoryEntryDTO is one row of the append-only ledger. The autoincrement id
// fixes the append order; rows are never updated or deleted.
type HistoryEntryDTO struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	TransactionID string `gorm:"size:40;index"`
	StateID       string `gorm:"size:40"`
	Message       string
	Metadata      string
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming convention.
func (HistoryEntryDTO) TableName() string {
	return "state_history"
}

func fromDomain(aggregate *transaction.Transaction) TransactionDTO {
	history := aggregate.History()
	entries := make([]HistoryEntryDTO, 0, len(history))
	for _, entry := range history {
		entries = append(entries, entryFromDomain(entry))
	}

	return TransactionDTO{
		TransactionID:         aggregate.ID().String(),
		OwnerID:               aggregate.OwnerID().Bytes(),
		AssetClass:            aggregate.AssetClass().String(),
		AssetName:             aggregate.AssetName(),
		Amount:                aggregate.Amount(),
		Direction:             aggregate.Direction().String(),
		CurrentStateID:        aggregate.CurrentStateID(),
		Status:                aggregate.Status().String(),
		FailureReason:         aggregate.FailureReason(),
		EstimatedCompletionAt: aggregate.EstimatedCompletionAt(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		History:               entries,
	}
}

func entryFromDomain(entry transaction.HistoryEntry) HistoryEntryDTO {
	var metadata string
	if len(entry.Metadata) > 0 {
		if raw, err := json.Marshal(entry.Metadata); err == nil {
			metadata = string(raw)
		}
	}

	return HistoryEntryDTO{
		TransactionID: entry.TransactionID.String(),
		StateID:       entry.StateID,
		Message:       entry.Message,
		Metadata:      metadata,
		CreatedAt:     entry.Timestamp,
	}
}

func toDomain(dto TransactionDTO) (*transaction.Transaction, error) {
	id, err := transaction.IDFromString(dto.TransactionID)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	assetClass, err := statemachine.ParseAssetClass(dto.AssetClass)
	if err != nil {
		return nil, err
	}

	direction, err := transaction.ParseDirection(dto.Direction)
	if err != nil {
		return nil, err
	}

	status, err := transaction.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]transaction.HistoryEntry, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		entry, entryErr := entryToDomain(entryDTO)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return transaction.RestoreTransaction(
		id,
		ownerID,
		assetClass,
		dto.AssetName,
		dto.Amount,
		direction,
		dto.CurrentStateID,
		status,
		dto.FailureReason,
		dto.EstimatedCompletionAt,
		dto.CreatedAt,
		dto.UpdatedAt,
		history,
	)
}

func entryToDomain(dto HistoryEntryDTO) (transaction.HistoryEntry, error) {
	id, err := transaction.IDFromString(dto.TransactionID)
	if err != nil {
		return transaction.HistoryEntry{}, err
	}

	var metadata map[string]string
	if dto.Metadata != "" {
		if err = json.Unmarshal([]byte(dto.Metadata), &metadata); err != nil {
			return transaction.HistoryEntry{}, err
		}
	}

	return transaction.HistoryEntry{
		TransactionID: id,
		StateID:       dto.StateID,
		Message:       dto.Message,
		Metadata:      metadata,
		Timestamp:     dto.CreatedAt,
	}, nil
}
