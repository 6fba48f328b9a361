package secondary

import "context"

// BudgetCreator defines the secondary port for the cloud billing API's
// spend-cap feature.
type BudgetCreator interface {
	// CreateBudget creates a monthly cost budget with an email
	// notification threshold. Creating a budget that already exists
	// is treated as success by the adapter.
	CreateBudget(ctx context.Context, req BudgetRequest) error
}

// BudgetRequest describes a monthly spend cap.
type BudgetRequest struct {
	Name         string
	LimitUSD     string  // decimal string, e.g. "5"
	ThresholdPct float64 // notify when actual spend passes this percentage
	Email        string
}
