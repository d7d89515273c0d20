package etherscan

type IEtherscan interface {
	// GetTransactionsByAddress returns every known transaction for the
	// address across the full block range, oldest first. An empty slice
	// is a valid result for an address with no history.
	GetTransactionsByAddress(address string) ([]Transaction, error)
}
