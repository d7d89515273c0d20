package model

import "time"

type TransactionType string

const (
	Incoming TransactionType = "incoming"
	Outgoing TransactionType = "outgoing"
)

// Transaction is one on-chain transfer touching a tracked wallet address.
// Type is classified relative to the address that was synced: a transfer is
// incoming iff its to_address matches that address case-insensitively.
// PriceUsd is only resolved for incoming transfers and stays nil when the
// historical price lookup failed or was never attempted.
type Transaction struct {
	Hash        string          `json:"tx_hash" gorm:"column:tx_hash;primaryKey"`
	Timestamp   time.Time       `json:"tx_timestamp" gorm:"column:tx_timestamp;not null"`
	AmountEth   string          `json:"amount_eth" gorm:"column:amount_eth;type:numeric(36,18);not null"`
	PriceUsd    *float64        `json:"price_usd" gorm:"column:price_usd;type:numeric(18,8)"`
	Type        TransactionType `json:"tx_type" gorm:"column:tx_type;not null"`
	FromAddress string          `json:"from_address" gorm:"column:from_address;not null"`
	ToAddress   string          `json:"to_address" gorm:"column:to_address;not null"`
}

func (Transaction) TableName() string {
	return "transactions"
}
