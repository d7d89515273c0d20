package server

import (
	"github.com/robfig/cron/v3"

	"github.com/bitplain/ethdash/internal/coingecko"
	"github.com/bitplain/ethdash/internal/etherscan"
	"github.com/bitplain/ethdash/internal/indexer"
	"github.com/bitplain/ethdash/internal/store"
	pgstore "github.com/bitplain/ethdash/internal/store/postgres"
	"github.com/bitplain/ethdash/internal/transport/http"
	"github.com/bitplain/ethdash/internal/utils/config"
	"github.com/bitplain/ethdash/internal/utils/logger"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)
	if err := pgstore.MigrateSchema(db); err != nil {
		logger.Fatal("failed to init schema", map[string]string{
			"error": err.Error(),
		})
	}

	s := store.New()
	etherscanClient := etherscan.New(appConfig, logger)
	priceSvc := coingecko.New(appConfig, logger)

	idx := indexer.New(db, s, logger, etherscanClient, priceSvc)

	// background sync of the default tracked address, mirroring the
	// dashboard's sync-on-load
	if appConfig.Etherscan.TrackedAddress != "" {
		c := cron.New()
		_, err := c.AddFunc(appConfig.IndexPeriod, func() {
			if _, err := idx.Sync(appConfig.Etherscan.TrackedAddress); err != nil {
				logger.Error("[Init][Sync] background sync failed", map[string]string{
					"error": err.Error(),
				})
			}
		})
		if err != nil {
			logger.Fatal("invalid INDEX_PERIOD", map[string]string{
				"error":  err.Error(),
				"period": appConfig.IndexPeriod,
			})
		}
		c.Start()
	}

	httpServer := http.NewHttpServer(appConfig, logger, idx, db)

	if err := httpServer.Run(":" + appConfig.ApiServer.Port); err != nil {
		logger.Fatal("http server stopped", map[string]string{
			"error": err.Error(),
		})
	}
}
