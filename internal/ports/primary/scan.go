package primary

import "context"

// ScanService defines the primary port for workspace database discovery.
type ScanService interface {
	// ScanWorkspace searches the remote workspace for databases,
	// analyzes each one, scores roadmap likelihood, and records the
	// results in the local catalog.
	ScanWorkspace(ctx context.Context) ([]*DatabaseAnalysis, error)

	// ListCatalog returns previously recorded scan results.
	ListCatalog(ctx context.Context) ([]*CatalogEntry, error)
}

// DatabaseAnalysis summarizes one discovered database.
type DatabaseAnalysis struct {
	DatabaseID       string
	Title            string
	Properties       []string
	PageCount        int
	SampleRows       []map[string]string // property name → display text
	Score            int
	LooksLikeRoadmap bool
	CreatedTime      string
	LastEditedTime   string
}

// CatalogEntry is a stored scan result.
type CatalogEntry struct {
	DatabaseID string
	Title      string
	Properties []string
	PageCount  int
	Score      int
	Roadmap    bool
	ScannedAt  string
}
