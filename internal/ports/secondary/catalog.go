package secondary

import "context"

// CatalogRepository defines the secondary port for the local scan
// catalog: the record of databases discovered in the remote workspace.
// The roadmap itself is never persisted here, only scan metadata.
type CatalogRepository interface {
	// Save upserts a scan record, keyed by database ID.
	Save(ctx context.Context, record *ScanRecord) error

	// List retrieves scan records, most recently scanned first.
	List(ctx context.Context) ([]*ScanRecord, error)

	// GetByDatabaseID retrieves one record, or nil when absent.
	GetByDatabaseID(ctx context.Context, databaseID string) (*ScanRecord, error)
}

// ScanRecord captures one analyzed remote database.
type ScanRecord struct {
	DatabaseID string
	Title      string
	Properties []string // column names at scan time
	PageCount  int
	Score      int // roadmap-likelihood score
	Roadmap    bool
	ScannedAt  string
}
