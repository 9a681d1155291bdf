package transactionrepo

import (
	"context"
	"errors"

	"assetflow/internal/core/domain/model/transaction"
	"assetflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTransactionRepository implements ports.TransactionRepository using GORM.
// The same implementation serves both supported drivers; nothing here is
// dialect-specific.
type GormTransactionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id transaction.ID, aggregate any)
}

// NewGormTransactionRepository creates a new GORM transaction repository.
func NewGormTransactionRepository(db *gorm.DB, tracker aggregateTracker) *GormTransactionRepository {
	return &GormTransactionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new record with its initial ledger entry. GORM inserts the
// association rows in the same statement batch, so record and entry land
// together or not at all.
func (r *GormTransactionRepository) Add(ctx context.Context, aggregate *transaction.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a mutated record and appends newEntry to the ledger when it is
// non-nil. Existing ledger rows are never touched.
func (r *GormTransactionRepository) Update(
	ctx context.Context,
	aggregate *transaction.Transaction,
	newEntry *transaction.HistoryEntry,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.History = nil

	result := r.db.WithContext(ctx).
		Model(&TransactionDTO{}).
		Where("transaction_id = ?", dto.TransactionID).
		Updates(map[string]any{
			"current_state_id": dto.CurrentStateID,
			"status":           dto.Status,
			"failure_reason":   dto.FailureReason,
			"updated_at":       dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if newEntry != nil {
		entryDTO := entryFromDomain(*newEntry)
		if err := r.db.WithContext(ctx).Create(&entryDTO).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a record by id with its full ledger, ordered by append order.
//
// On postgres the row is read FOR UPDATE, so a Get inside a unit-of-work
// transaction holds the row until commit and concurrent read-modify-write
// sequences on the same id run one after the other instead of overwriting
// each other under READ COMMITTED. sqlite has no FOR UPDATE; its single-writer
// locking already prevents the lost update.
func (r *GormTransactionRepository) Get(ctx context.Context, id transaction.ID) (*transaction.Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto TransactionDTO
	err := tx.
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		First(&dto, "transaction_id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transactionId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetHistory retrieves the ledger of a record in append order. Returns
// ObjectNotFoundError when the record itself does not exist; an existing
// record always has at least its initial entry.
func (r *GormTransactionRepository) GetHistory(
	ctx context.Context,
	id transaction.ID,
) ([]transaction.HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&TransactionDTO{}).
		Where("transaction_id = ?", id.String()).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("transactionId", id.String())
	}

	var dtos []HistoryEntryDTO
	err = r.db.WithContext(ctx).
		Where("transaction_id = ?", id.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]transaction.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := entryToDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetAllInProcessingStatus retrieves every record still walking its machine,
// each with its full ledger.
func (r *GormTransactionRepository) GetAllInProcessingStatus(
	ctx context.Context,
) ([]*transaction.Transaction, error) {
	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Find(&dtos, "status = ?", transaction.Processing.String()).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*transaction.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
