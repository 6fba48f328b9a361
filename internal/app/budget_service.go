package app

import (
	"context"
	"fmt"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

// BudgetName is the fixed name of the monthly learning spend cap.
const BudgetName = "LearningBudget-$5"

// budgetLimitUSD and budgetThresholdPct describe the cap: five dollars
// a month with an email alert at 80% actual spend.
const (
	budgetLimitUSD     = "5"
	budgetThresholdPct = 80.0
)

// BudgetServiceImpl implements the BudgetService interface.
type BudgetServiceImpl struct {
	creator secondary.BudgetCreator
	enabled bool
	email   string
}

// NewBudgetService creates a new BudgetService with injected dependencies.
// creator may be nil when the billing credential is not configured.
func NewBudgetService(creator secondary.BudgetCreator, enabled bool, email string) *BudgetServiceImpl {
	return &BudgetServiceImpl{creator: creator, enabled: enabled, email: email}
}

// EnsureBudget creates the monthly spend cap when the feature is
// enabled and configured, otherwise reports why it was skipped.
func (s *BudgetServiceImpl) EnsureBudget(ctx context.Context) (*primary.BudgetResult, error) {
	if !s.enabled {
		return &primary.BudgetResult{Skipped: true, Reason: "budget creation disabled"}, nil
	}
	if s.creator == nil {
		return &primary.BudgetResult{Skipped: true, Reason: "billing credentials not configured"}, nil
	}
	if s.email == "" {
		return &primary.BudgetResult{Skipped: true, Reason: "no notification email configured"}, nil
	}

	err := s.creator.CreateBudget(ctx, secondary.BudgetRequest{
		Name:         BudgetName,
		LimitUSD:     budgetLimitUSD,
		ThresholdPct: budgetThresholdPct,
		Email:        s.email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &primary.BudgetResult{Name: BudgetName}, nil
}

var _ primary.BudgetService = (*BudgetServiceImpl)(nil)
