package app

import (
	"context"
	"fmt"
	"io"

	"github.com/example/waypoint/internal/models"
	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

// SyncServiceImpl implements the SyncService interface.
type SyncServiceImpl struct {
	store secondary.DatabaseStore
	out   io.Writer
}

// NewSyncService creates a new SyncService with injected dependencies.
func NewSyncService(store secondary.DatabaseStore, out io.Writer) *SyncServiceImpl {
	if out == nil {
		out = io.Discard
	}
	return &SyncServiceImpl{store: store, out: out}
}

// SyncRoadmap upserts one remote row per roadmap week. Remote rows are
// indexed by the week natural key; a local entry with no remote match
// is created, one with a match is updated in place by page ID. Rows
// are never deleted and recreated: remote-only edits and the status
// and priority cells of existing rows survive a sync.
func (s *SyncServiceImpl) SyncRoadmap(ctx context.Context, req primary.SyncRequest) (*primary.SyncSummary, error) {
	database, err := s.store.GetDatabase(ctx, req.DatabaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch database %s: %w", req.DatabaseID, err)
	}

	fields, err := ResolveFields(database.Properties)
	if err != nil {
		return nil, err
	}

	pages, err := fetchAllPages(ctx, s.store, req.DatabaseID)
	if err != nil {
		return nil, err
	}

	byWeek := make(map[int]*secondary.Page, len(pages))
	for _, page := range pages {
		if week := weekOf(page, fields); week > 0 {
			byWeek[week] = page
		}
	}

	summary := &primary.SyncSummary{}
	for _, entry := range models.BuildRoadmap() {
		existing := byWeek[entry.Week]

		properties := s.entryProperties(entry, fields, req.RepoURLs, existing == nil)

		if existing == nil {
			if _, err := s.store.CreatePage(ctx, req.DatabaseID, properties); err != nil {
				fmt.Fprintf(s.out, "Week %d: create failed: %v\n", entry.Week, err)
				summary.Failed++
				continue
			}
			fmt.Fprintf(s.out, "Week %d: created\n", entry.Week)
			summary.Created++
			continue
		}

		if err := s.store.UpdatePage(ctx, existing.ID, properties); err != nil {
			fmt.Fprintf(s.out, "Week %d: update failed: %v\n", entry.Week, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(s.out, "Week %d: updated\n", entry.Week)
		summary.Updated++
	}

	return summary, nil
}

// entryProperties maps a roadmap entry onto the resolved columns.
// Status and priority are stamped only on create so operator progress
// on existing rows is never clobbered.
func (s *SyncServiceImpl) entryProperties(entry models.RoadmapEntry, fields *FieldMap, repoURLs map[string]string, creating bool) map[string]secondary.PropertyValue {
	properties := map[string]secondary.PropertyValue{
		fields.MustName(FieldWeek):  secondary.NumberValue(float64(entry.Week)),
		fields.MustName(FieldTopic): secondary.TitleValue(entry.Title),
	}

	if name, ok := fields.Name(FieldMonth); ok {
		properties[name] = secondary.SelectValue(models.PhaseSelectName(entry.Phase))
	}
	if name, ok := fields.Name(FieldProject); ok {
		properties[name] = secondary.TextValue(entry.PhaseLabel)
	}
	if name, ok := fields.Name(FieldDetails); ok && entry.DetailText != "" {
		properties[name] = secondary.TextValue(entry.DetailText)
	}
	if name, ok := fields.Name(FieldTimeline); ok {
		properties[name] = secondary.TextValue(entry.TimelineLabel)
	}
	if name, ok := fields.Name(FieldDataset); ok && entry.ResourceURL != "" {
		properties[name] = secondary.URLValue(entry.ResourceURL)
	}
	if name, ok := fields.Name(FieldGitHub); ok && entry.RepoKey != "" {
		if url := repoURLs[entry.RepoKey]; url != "" {
			properties[name] = secondary.URLValue(url)
		}
	}

	if creating {
		if name, ok := fields.Name(FieldStatus); ok {
			properties[name] = secondary.SelectValue(StatusToDo)
		}
		if name, ok := fields.Name(FieldPriority); ok {
			properties[name] = secondary.SelectValue(models.PriorityFor(entry.Week))
		}
	}

	return properties
}

var _ primary.SyncService = (*SyncServiceImpl)(nil)
