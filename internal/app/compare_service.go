package app

import (
	"context"
	"fmt"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

// CompareServiceImpl implements the CompareService interface.
type CompareServiceImpl struct {
	store secondary.DatabaseStore
}

// NewCompareService creates a new CompareService with injected dependencies.
func NewCompareService(store secondary.DatabaseStore) *CompareServiceImpl {
	return &CompareServiceImpl{store: store}
}

// CompareDatabases fetches both databases fully and reports their
// relative completeness: row count, property coverage, weeks covered,
// and how much detail text the rows carry.
func (s *CompareServiceImpl) CompareDatabases(ctx context.Context, firstID, secondID string) (*primary.Comparison, error) {
	first, err := s.profile(ctx, firstID)
	if err != nil {
		return nil, err
	}
	second, err := s.profile(ctx, secondID)
	if err != nil {
		return nil, err
	}

	comparison := &primary.Comparison{First: *first, Second: *second}
	firstScore := profileScore(first)
	secondScore := profileScore(second)
	switch {
	case firstScore > secondScore:
		comparison.Verdict = first.DatabaseID
	case secondScore > firstScore:
		comparison.Verdict = second.DatabaseID
	}

	return comparison, nil
}

func (s *CompareServiceImpl) profile(ctx context.Context, databaseID string) (*primary.DatabaseProfile, error) {
	database, err := s.store.GetDatabase(ctx, databaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch database %s: %w", databaseID, err)
	}

	pages, err := fetchAllPages(ctx, s.store, databaseID)
	if err != nil {
		return nil, err
	}

	profile := &primary.DatabaseProfile{
		DatabaseID:    database.ID,
		Title:         database.Title,
		PageCount:     len(pages),
		PropertyCount: len(database.Properties),
	}

	fields, err := ResolveFields(database.Properties)
	if err != nil {
		// A database that cannot resolve the required fields still
		// gets a profile, just without week coverage.
		return profile, nil
	}

	weeks := make(map[int]bool)
	detailsColumn, hasDetails := fields.Name(FieldDetails)
	for _, page := range pages {
		if week := weekOf(page, fields); week > 0 {
			weeks[week] = true
		}
		if hasDetails {
			profile.DetailChars += len(page.Properties[detailsColumn].PlainText())
		}
	}
	profile.WeeksCovered = len(weeks)

	return profile, nil
}

// profileScore weighs weeks covered and detail richness; a database
// covering more weeks wins, detail text breaks ties.
func profileScore(p *primary.DatabaseProfile) int {
	return p.WeeksCovered*10000 + p.DetailChars
}

var _ primary.CompareService = (*CompareServiceImpl)(nil)
