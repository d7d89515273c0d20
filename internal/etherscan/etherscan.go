package etherscan

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bitplain/ethdash/internal/utils/config"
	"github.com/bitplain/ethdash/internal/utils/logger"
)

const noTransactionsFound = "No transactions found"

type etherscan struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *logger.Logger
}

func New(cfg *config.AppConfig, logger *logger.Logger) IEtherscan {
	return &etherscan{
		baseURL: cfg.Etherscan.BaseURL,
		apiKey:  cfg.Etherscan.APIKey,
		client:  &http.Client{},
		logger:  logger,
	}
}

func (c *etherscan) GetTransactionsByAddress(address string) ([]Transaction, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "txlist")
	params.Set("address", address)
	params.Set("startblock", "0")
	params.Set("endblock", "99999999")
	params.Set("sort", "asc")
	params.Set("apikey", c.apiKey)

	resp, err := c.client.Get(fmt.Sprintf("%s?%s", c.baseURL, params.Encode()))
	if err != nil {
		c.logger.Error("[GetTransactionsByAddress][client.Get]", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
		return nil, errors.Wrap(err, "failed to request transaction list")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("[GetTransactionsByAddress] unexpected status", map[string]string{
			"statusCode": fmt.Sprintf("%d", resp.StatusCode),
			"address":    address,
		})
		return nil, errors.Errorf("etherscan request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("[GetTransactionsByAddress][io.ReadAll]", map[string]string{
			"error": err.Error(),
		})
		return nil, errors.Wrap(err, "failed to read response body")
	}

	var data txListResponse
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error("[GetTransactionsByAddress][json.Unmarshal]", map[string]string{
			"error": err.Error(),
			"body":  string(body),
		})
		return nil, errors.Wrap(err, "failed to parse etherscan response")
	}

	// an empty history is reported as a non-"1" status, not an error
	if data.Status != "1" {
		if data.Message == noTransactionsFound {
			return []Transaction{}, nil
		}

		message := data.Message
		if message == "" {
			message = "unknown error"
		}
		return nil, errors.Errorf("etherscan error: %s", message)
	}

	var txs []Transaction
	if err := json.Unmarshal(data.Result, &txs); err != nil {
		return []Transaction{}, nil
	}

	return txs, nil
}
