package primary

import "context"

// BudgetService defines the primary port for the optional spend cap.
type BudgetService interface {
	// EnsureBudget creates the monthly learning budget with its email
	// alert when the feature is enabled and configured.
	EnsureBudget(ctx context.Context) (*BudgetResult, error)
}

// BudgetResult reports what the budget step did.
type BudgetResult struct {
	Skipped bool
	Reason  string // populated when Skipped
	Name    string
}
