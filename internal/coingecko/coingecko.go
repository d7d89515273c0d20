package coingecko

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/bitplain/ethdash/internal/utils/config"
	"github.com/bitplain/ethdash/internal/utils/logger"
)

const (
	dayKeyLayout = "2006-01-02"
	// CoinGecko's history endpoint expects dd-mm-yyyy
	historyDateLayout = "02-01-2006"
)

type coingecko struct {
	baseURL string
	client  *http.Client
	logger  *logger.Logger

	// priceCache memoizes one price per UTC calendar day for the process
	// lifetime. Entries never expire; the working set is bounded by the
	// number of distinct days synced, so unbounded growth is accepted.
	priceCache *cache.Cache
}

type historyResponse struct {
	MarketData *struct {
		CurrentPrice struct {
			USD *float64 `json:"usd"`
		} `json:"current_price"`
	} `json:"market_data"`
}

func New(cfg *config.AppConfig, logger *logger.Logger) IPriceSvc {
	return &coingecko{
		baseURL:    cfg.Coingecko.BaseURL,
		client:     &http.Client{},
		logger:     logger,
		priceCache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *coingecko) GetHistoricalPriceUSD(date time.Time) (*float64, error) {
	day := date.UTC()
	key := day.Format(dayKeyLayout)

	if cached, found := c.priceCache.Get(key); found {
		return cached.(*float64), nil
	}

	url := fmt.Sprintf("%s/coins/ethereum/history?date=%s&localization=false",
		c.baseURL, day.Format(historyDateLayout))

	resp, err := c.client.Get(url)
	if err != nil {
		c.logger.Error("[GetHistoricalPriceUSD][client.Get]", map[string]string{
			"error": err.Error(),
			"date":  key,
		})
		return nil, errors.Wrap(err, "failed to request historical price")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("[GetHistoricalPriceUSD] unexpected status", map[string]string{
			"statusCode": fmt.Sprintf("%d", resp.StatusCode),
			"date":       key,
		})
		return nil, errors.Errorf("coingecko request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("[GetHistoricalPriceUSD][io.ReadAll]", map[string]string{
			"error": err.Error(),
		})
		return nil, errors.Wrap(err, "failed to read response body")
	}

	var data historyResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error("[GetHistoricalPriceUSD][json.Unmarshal]", map[string]string{
			"error": err.Error(),
			"body":  string(body),
		})
		return nil, errors.Wrap(err, "failed to parse coingecko response")
	}

	var price *float64
	if data.MarketData != nil {
		price = data.MarketData.CurrentPrice.USD
	}

	// a day with no known price is memoized too, so it is not re-queried
	c.priceCache.Set(key, price, cache.NoExpiration)

	return price, nil
}
