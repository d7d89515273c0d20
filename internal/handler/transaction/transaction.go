package transaction

import (
	"io"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bitplain/ethdash/internal/indexer"
	"github.com/bitplain/ethdash/internal/model"
	transactionstore "github.com/bitplain/ethdash/internal/store/transaction"
	"github.com/bitplain/ethdash/internal/utils/config"
	"github.com/bitplain/ethdash/internal/utils/logger"
)

type handler struct {
	db        *gorm.DB
	appConfig *config.AppConfig
	logger    *logger.Logger
	txStore   transactionstore.IStore
	indexer   indexer.IIndexer
}

func New(db *gorm.DB, appConfig *config.AppConfig, logger *logger.Logger, txStore transactionstore.IStore, indexer indexer.IIndexer) IHandler {
	return &handler{
		db:        db,
		appConfig: appConfig,
		logger:    logger,
		txStore:   txStore,
		indexer:   indexer,
	}
}

// resolveAddress falls back to the configured tracked address when the
// caller did not supply one. Defaulting lives here so the indexer always
// receives an explicit address.
func (h *handler) resolveAddress(requested string) (string, error) {
	address := strings.TrimSpace(requested)
	if address == "" {
		address = h.appConfig.Etherscan.TrackedAddress
	}
	if address == "" {
		return "", errors.New("address is required")
	}
	if !common.IsHexAddress(address) {
		return "", errors.Errorf("invalid ethereum address: %s", address)
	}

	return address, nil
}

// GetTransactions godoc
// @Summary List stored transactions
// @Description List stored transactions for an address, most recent first
// @id listTransactions
// @Tags Transaction
// @Produce json
// @Param address query string false "wallet address, falls back to ETH_ADDRESS"
// @Success 200 {object} ListTransactionsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /transactions [get]
func (h *handler) GetTransactions(c *gin.Context) {
	address, err := h.resolveAddress(c.Query("address"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txs, err := h.txStore.ListByAddress(h.db, address)
	if err != nil {
		h.logger.Error("[GetTransactions][ListByAddress]", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if txs == nil {
		txs = []model.Transaction{}
	}

	c.JSON(http.StatusOK, ListTransactionsResponse{
		Address:      address,
		Transactions: txs,
	})
}

// Sync godoc
// @Summary Sync transactions from the explorer
// @Description Fetch the address's history from Etherscan, enrich incoming transfers with a historical USD price and upsert every record
// @id syncTransactions
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body SyncRequest false "wallet address, falls back to ETH_ADDRESS"
// @Success 200 {object} SyncResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /sync [post]
func (h *handler) Sync(c *gin.Context) {
	var req SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address, err := h.resolveAddress(req.Address)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.indexer.Sync(address)
	if err != nil {
		h.logger.Error("[Sync][indexer.Sync]", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SyncResponse{
		Address: address,
		Synced:  result.Fetched,
		Stored:  result.Stored,
	})
}
