package indexer

type IIndexer interface {
	// Sync fetches the address's full transaction history, enriches
	// incoming transfers with a historical USD price and upserts every
	// record. A price lookup failure degrades that record to a nil price;
	// a storage failure skips that record. Only an explorer failure
	// aborts the pass.
	Sync(address string) (*SyncResult, error)
}

// SyncResult reports both how many raw transactions the explorer returned
// and how many of them were actually written.
type SyncResult struct {
	Fetched int `json:"fetched"`
	Stored  int `json:"stored"`
}
