package app

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

// ReorderServiceImpl implements the ReorderService interface.
//
// Reordering is destructive: it recreates every row in week order and
// archives the originals, losing any remote-only edits on them. Row
// order is really the remote system's view concern; this exists only
// for explicit operator opt-in and nothing else calls it.
type ReorderServiceImpl struct {
	store secondary.DatabaseStore
	out   io.Writer
}

// NewReorderService creates a new ReorderService with injected dependencies.
func NewReorderService(store secondary.DatabaseStore, out io.Writer) *ReorderServiceImpl {
	if out == nil {
		out = io.Discard
	}
	return &ReorderServiceImpl{store: store, out: out}
}

// ReorderByWeek recreates every row carrying a week number in
// ascending week order, then archives the originals. A row that fails
// to recreate keeps its original (no archive), so no content is lost
// to a partial failure.
func (s *ReorderServiceImpl) ReorderByWeek(ctx context.Context, databaseID string) (*primary.MaintenanceSummary, error) {
	database, err := s.store.GetDatabase(ctx, databaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch database %s: %w", databaseID, err)
	}
	fields, err := ResolveFields(database.Properties)
	if err != nil {
		return nil, err
	}

	pages, err := fetchAllPages(ctx, s.store, databaseID)
	if err != nil {
		return nil, err
	}

	type orderedPage struct {
		week int
		page *secondary.Page
	}
	var ordered []orderedPage
	summary := &primary.MaintenanceSummary{}
	for _, page := range pages {
		week := weekOf(page, fields)
		if week == 0 {
			summary.Skipped++
			continue
		}
		ordered = append(ordered, orderedPage{week: week, page: page})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].week < ordered[j].week })

	for _, item := range ordered {
		if _, err := s.store.CreatePage(ctx, databaseID, item.page.Properties); err != nil {
			fmt.Fprintf(s.out, "Week %d: recreate failed, original kept: %v\n", item.week, err)
			summary.Failed++
			continue
		}
		if err := s.store.ArchivePage(ctx, item.page.ID); err != nil {
			fmt.Fprintf(s.out, "Week %d: archive of original failed: %v\n", item.week, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(s.out, "Week %d: reordered\n", item.week)
		summary.Updated++
	}

	return summary, nil
}

var _ primary.ReorderService = (*ReorderServiceImpl)(nil)
