package primary

import "context"

// SchemaService defines the primary port for idempotent schema ensuring.
type SchemaService interface {
	// EnsureDatabase creates the roadmap database under the parent
	// page when no database ID is supplied, or verifies an existing one.
	EnsureDatabase(ctx context.Context, databaseID string) (*EnsureDatabaseResponse, error)

	// EnsureSchema adds every target column missing from the remote
	// schema with a single additive update. Existing columns are never
	// altered or removed; when nothing is missing no write is issued.
	EnsureSchema(ctx context.Context, req EnsureSchemaRequest) (*EnsureSchemaResponse, error)
}

// EnsureDatabaseResponse reports the ensured database.
type EnsureDatabaseResponse struct {
	DatabaseID string
	Title      string
	Created    bool
}

// EnsureSchemaRequest targets a database with a named column set.
// Column specs use the secondary-port descriptors resolved by the caller.
type EnsureSchemaRequest struct {
	DatabaseID string
}

// EnsureSchemaResponse reports what the ensure pass did.
type EnsureSchemaResponse struct {
	Added   []string // column names added this run
	Skipped int      // target columns already present
}

// SyncService defines the primary port for the upsert-by-natural-key
// synchronizer.
type SyncService interface {
	// SyncRoadmap upserts one remote row per roadmap week. Rows are
	// matched by week number; existing rows are updated in place by
	// identifier, never deleted and recreated.
	SyncRoadmap(ctx context.Context, req SyncRequest) (*SyncSummary, error)
}

// SyncRequest targets a database, with the repository URL map used to
// fill the code-repository link column.
type SyncRequest struct {
	DatabaseID string
	RepoURLs   map[string]string
}

// SyncSummary is the success-count accounting of a sync run.
type SyncSummary struct {
	Created int
	Updated int
	Failed  int
}
