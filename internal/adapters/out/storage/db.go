package storage

import (
	"fmt"

	"assetflow/internal/adapters/out/storage/transactionrepo"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenPostgres connects to a PostgreSQL database.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// OpenSQLite opens a file-backed SQLite database. Useful for local runs and
// single-node deployments; the repository code is identical for both drivers.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	return db, nil
}

// Migrate creates or updates the schema for both tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&transactionrepo.TransactionDTO{},
		&transactionrepo.HistoryEntryDTO{},
	)
}
