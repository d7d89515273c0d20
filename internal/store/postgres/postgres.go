package pgstore

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bitplain/ethdash/internal/utils/config"
	"github.com/bitplain/ethdash/internal/utils/logger"
)

func New(appConfig *config.AppConfig, logger *logger.Logger) *gorm.DB {
	if appConfig.Postgres.URL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	db, err := gorm.Open(postgres.Open(appConfig.Postgres.URL), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to postgres", map[string]string{
			"error": err.Error(),
		})
	}

	logger.Info("database connected")
	return db
}

// MigrateSchema creates the transactions table and its retrieval index.
// Every statement is IF NOT EXISTS, so running it on each boot is safe.
func MigrateSchema(db *gorm.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			tx_hash TEXT PRIMARY KEY,
			tx_timestamp TIMESTAMPTZ NOT NULL,
			amount_eth NUMERIC(36, 18) NOT NULL,
			price_usd NUMERIC(18, 8),
			tx_type TEXT NOT NULL,
			from_address TEXT NOT NULL,
			to_address TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS transactions_timestamp_idx
			ON transactions (tx_timestamp DESC)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
