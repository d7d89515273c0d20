package store

import (
	transactionstore "github.com/bitplain/ethdash/internal/store/transaction"
)

type Store struct {
	Transaction transactionstore.IStore
}

func New() *Store {
	return &Store{
		Transaction: transactionstore.New(),
	}
}
