package transactionstore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bitplain/ethdash/internal/model"
)

type store struct{}

func New() IStore {
	return &store{}
}

func (s *store) Upsert(db *gorm.DB, tx *model.Transaction) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_hash"}},
		UpdateAll: true,
	}).Create(tx).Error
}

func (s *store) ListByAddress(db *gorm.DB, address string) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := db.
		Where("lower(from_address) = lower(?) OR lower(to_address) = lower(?)", address, address).
		Order("tx_timestamp DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}
