package primary

import "context"

// EnhanceService defines the primary port for enriching an existing
// roadmap database in place.
type EnhanceService interface {
	// EnhanceDatabase ensures the details column exists, then updates
	// existing rows with the built roadmap content. Rows already
	// carrying the target content are left untouched.
	EnhanceDatabase(ctx context.Context, databaseID string) (*EnhanceSummary, error)

	// EnsureStatusColumn adds the tri-state progress column when absent.
	EnsureStatusColumn(ctx context.Context, databaseID string) (added bool, err error)

	// ApplyDefaultStatus stamps every row with the not-started status.
	ApplyDefaultStatus(ctx context.Context, databaseID string) (*EnhanceSummary, error)
}

// EnhanceSummary is the success-count accounting of an enhance pass.
type EnhanceSummary struct {
	Updated   int
	Unchanged int
	Failed    int
}
