package etherscan

import "encoding/json"

// Transaction is the subset of Etherscan's txlist record this service
// consumes. Amounts are wei integer strings, timestamps epoch seconds.
type Transaction struct {
	Hash      string `json:"hash"`
	TimeStamp string `json:"timeStamp"`
	Value     string `json:"value"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// txListResponse mirrors Etherscan's envelope. Result is an array of
// transactions on success but a plain string on some error responses, so
// it is decoded lazily.
type txListResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}
