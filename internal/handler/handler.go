package handler

import (
	"gorm.io/gorm"

	"github.com/bitplain/ethdash/internal/handler/transaction"
	"github.com/bitplain/ethdash/internal/indexer"
	transactionstore "github.com/bitplain/ethdash/internal/store/transaction"
	"github.com/bitplain/ethdash/internal/utils/config"
	"github.com/bitplain/ethdash/internal/utils/logger"
)

type Handler struct {
	TransactionHandler transaction.IHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger, idx indexer.IIndexer, db *gorm.DB) *Handler {
	return &Handler{
		TransactionHandler: transaction.New(db, appConfig, logger, transactionstore.New(), idx),
	}
}
