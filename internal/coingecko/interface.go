package coingecko

import "time"

type IPriceSvc interface {
	// GetHistoricalPriceUSD returns the ETH/USD price for the UTC
	// calendar day of date. The result may be nil when CoinGecko has no
	// price for that day; a nil price is a valid, cacheable answer.
	GetHistoricalPriceUSD(date time.Time) (*float64, error)
}
