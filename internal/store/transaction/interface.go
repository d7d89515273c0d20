package transactionstore

import (
	"gorm.io/gorm"

	"github.com/bitplain/ethdash/internal/model"
)

type IStore interface {
	// Upsert inserts the transaction, replacing every column when a row
	// with the same hash already exists.
	Upsert(db *gorm.DB, tx *model.Transaction) error

	// ListByAddress returns all transactions where the address matches
	// either endpoint case-insensitively, most recent first.
	ListByAddress(db *gorm.DB, address string) ([]model.Transaction, error)
}
