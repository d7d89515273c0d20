package transaction

import (
	"github.com/gin-gonic/gin"

	"github.com/bitplain/ethdash/internal/model"
)

type IHandler interface {
	// GetTransactions lists the stored transactions for an address
	GetTransactions(c *gin.Context)

	// Sync pulls the address's history from the explorer and stores it
	Sync(c *gin.Context)
}

type SyncRequest struct {
	Address string `json:"address"`
}

type ListTransactionsResponse struct {
	Address      string              `json:"address"`
	Transactions []model.Transaction `json:"transactions"`
}

type SyncResponse struct {
	Address string `json:"address"`
	Synced  int    `json:"synced"`
	Stored  int    `json:"stored"`
}
