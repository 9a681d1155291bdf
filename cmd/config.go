package cmd

import (
	"fmt"
	"time"

	"assetflow/internal/core/domain/model/transaction"

	"github.com/shopspring/decimal"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config carries the deployment settings of the service. Values come from the
// environment; see getConfigs in cmd/app.
type Config struct {
	HTTPPort string

	StorageDriver string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	SQLitePath    string

	AmountMin string
	AmountMax string

	AutoAdvance         bool
	AutoAdvanceInterval time.Duration
}

// PostgresDSN assembles the connection string for the postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// AmountBounds parses the configured order amount bounds, falling back to the
// defaults for unset values.
func (c Config) AmountBounds() (transaction.Bounds, error) {
	bounds := transaction.DefaultBounds()
	minAmount := bounds.Min
	maxAmount := bounds.Max

	var err error
	if c.AmountMin != "" {
		if minAmount, err = decimal.NewFromString(c.AmountMin); err != nil {
			return transaction.Bounds{}, fmt.Errorf("parse AMOUNT_MIN: %w", err)
		}
	}
	if c.AmountMax != "" {
		if maxAmount, err = decimal.NewFromString(c.AmountMax); err != nil {
			return transaction.Bounds{}, fmt.Errorf("parse AMOUNT_MAX: %w", err)
		}
	}

	return transaction.NewBounds(minAmount, maxAmount)
}
