package indexer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/bitplain/ethdash/internal/coingecko"
	"github.com/bitplain/ethdash/internal/etherscan"
	"github.com/bitplain/ethdash/internal/model"
	"github.com/bitplain/ethdash/internal/store"
	"github.com/bitplain/ethdash/internal/utils/logger"
)

type Indexer struct {
	db        *gorm.DB
	store     *store.Store
	logger    *logger.Logger
	etherscan etherscan.IEtherscan
	priceSvc  coingecko.IPriceSvc
}

func New(db *gorm.DB, store *store.Store, logger *logger.Logger, etherscan etherscan.IEtherscan, priceSvc coingecko.IPriceSvc) IIndexer {
	return &Indexer{
		db:        db,
		store:     store,
		logger:    logger,
		etherscan: etherscan,
		priceSvc:  priceSvc,
	}
}

func (idx *Indexer) Sync(address string) (*SyncResult, error) {
	if address == "" {
		return nil, errors.New("address is required")
	}

	idx.logger.Info("[Sync] Start syncing transactions...", map[string]string{
		"address": address,
	})

	txs, err := idx.etherscan.GetTransactionsByAddress(address)
	if err != nil {
		idx.logger.Error("[Sync][GetTransactionsByAddress]", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
		return nil, err
	}

	result := &SyncResult{Fetched: len(txs)}

	// one record at a time keeps load on the price service bounded
	for _, raw := range txs {
		record, err := idx.buildRecord(address, raw)
		if err != nil {
			idx.logger.Error("[Sync][buildRecord] skipping malformed transaction", map[string]string{
				"error":   err.Error(),
				"tx_hash": raw.Hash,
			})
			continue
		}

		if err := idx.store.Transaction.Upsert(idx.db, record); err != nil {
			idx.logger.Error("[Sync][Upsert] skipping record", map[string]string{
				"error":   err.Error(),
				"tx_hash": record.Hash,
			})
			continue
		}
		result.Stored++

		idx.logger.Debug(fmt.Sprintf("Tx Hash: %s - Amount: %s [%s]", record.Hash, record.AmountEth, record.Type))
	}

	idx.logger.Info("[Sync] Done", map[string]string{
		"address": address,
		"fetched": strconv.Itoa(result.Fetched),
		"stored":  strconv.Itoa(result.Stored),
	})

	return result, nil
}

func (idx *Indexer) buildRecord(address string, raw etherscan.Transaction) (*model.Transaction, error) {
	epochSeconds, err := strconv.ParseInt(raw.TimeStamp, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timestamp %q", raw.TimeStamp)
	}
	timestamp := time.Unix(epochSeconds, 0).UTC()

	amount, err := model.NewWeiAmount(raw.Value)
	if err != nil {
		return nil, err
	}

	txType := model.Outgoing
	var priceUsd *float64

	if strings.EqualFold(raw.To, address) {
		txType = model.Incoming

		// enrichment is best effort, the record is stored either way
		price, err := idx.priceSvc.GetHistoricalPriceUSD(timestamp)
		if err != nil {
			idx.logger.Warn("[Sync][GetHistoricalPriceUSD] storing without price", map[string]string{
				"error":   err.Error(),
				"tx_hash": raw.Hash,
			})
		} else {
			priceUsd = price
		}
	}

	return &model.Transaction{
		Hash:        raw.Hash,
		Timestamp:   timestamp,
		AmountEth:   amount.ToDecimalString(),
		PriceUsd:    priceUsd,
		Type:        txType,
		FromAddress: raw.From,
		ToAddress:   raw.To,
	}, nil
}
