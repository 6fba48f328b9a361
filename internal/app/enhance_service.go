package app

import (
	"context"
	"fmt"
	"io"

	"github.com/example/waypoint/internal/models"
	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

// EnhanceServiceImpl implements the EnhanceService interface.
type EnhanceServiceImpl struct {
	store secondary.DatabaseStore
	out   io.Writer
}

// NewEnhanceService creates a new EnhanceService with injected dependencies.
func NewEnhanceService(store secondary.DatabaseStore, out io.Writer) *EnhanceServiceImpl {
	if out == nil {
		out = io.Discard
	}
	return &EnhanceServiceImpl{store: store, out: out}
}

// EnhanceDatabase ensures the details column exists, then updates
// existing rows in place with the built roadmap content. Rows already
// carrying the target content are left untouched; rows without a
// recognizable week number are skipped.
func (s *EnhanceServiceImpl) EnhanceDatabase(ctx context.Context, databaseID string) (*primary.EnhanceSummary, error) {
	added, err := ensureColumn(ctx, s.store, databaseID, ColDetails, secondary.PropertySpec{Type: secondary.PropertyRichText})
	if err != nil {
		return nil, err
	}
	if added {
		fmt.Fprintf(s.out, "Added column %s\n", ColDetails)
	}

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

	byWeek := make(map[int]models.RoadmapEntry, models.WeeksTotal)
	for _, entry := range models.BuildRoadmap() {
		byWeek[entry.Week] = entry
	}

	summary := &primary.EnhanceSummary{}
	for _, page := range pages {
		week := weekOf(page, fields)
		entry, known := byWeek[week]
		if !known {
			fmt.Fprintf(s.out, "Skipping row %s: no week number\n", page.ID)
			continue
		}

		updates := s.rowUpdates(page, entry, fields)
		if len(updates) == 0 {
			summary.Unchanged++
			continue
		}

		if err := s.store.UpdatePage(ctx, page.ID, updates); err != nil {
			fmt.Fprintf(s.out, "Week %d: update failed: %v\n", week, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(s.out, "Week %d: enhanced\n", week)
		summary.Updated++
	}

	return summary, nil
}

// rowUpdates computes the cells whose current content differs from the
// built roadmap. Only changed cells are written.
func (s *EnhanceServiceImpl) rowUpdates(page *secondary.Page, entry models.RoadmapEntry, fields *FieldMap) map[string]secondary.PropertyValue {
	updates := make(map[string]secondary.PropertyValue)

	topicCol := fields.MustName(FieldTopic)
	if page.Properties[topicCol].PlainText() != entry.Title {
		updates[topicCol] = secondary.TitleValue(entry.Title)
	}

	if name, ok := fields.Name(FieldDetails); ok && entry.DetailText != "" {
		if page.Properties[name].PlainText() != entry.DetailText {
			updates[name] = secondary.TextValue(entry.DetailText)
		}
	}
	if name, ok := fields.Name(FieldProject); ok {
		if page.Properties[name].PlainText() != entry.PhaseLabel {
			updates[name] = secondary.TextValue(entry.PhaseLabel)
		}
	}
	if name, ok := fields.Name(FieldDataset); ok && entry.ResourceURL != "" {
		if page.Properties[name].PlainText() != entry.ResourceURL {
			updates[name] = secondary.URLValue(entry.ResourceURL)
		}
	}

	return updates
}

// EnsureStatusColumn adds the tri-state progress column when absent.
func (s *EnhanceServiceImpl) EnsureStatusColumn(ctx context.Context, databaseID string) (bool, error) {
	spec := secondary.PropertySpec{
		Type: secondary.PropertyStatus,
		Options: []secondary.SelectOption{
			{Name: ProgressNotStarted, Color: "gray"},
			{Name: ProgressInProgress, Color: "blue"},
			{Name: ProgressDone, Color: "green"},
		},
	}
	return ensureColumn(ctx, s.store, databaseID, ColProgress, spec)
}

// ApplyDefaultStatus stamps every row with the not-started status.
func (s *EnhanceServiceImpl) ApplyDefaultStatus(ctx context.Context, databaseID string) (*primary.EnhanceSummary, error) {
	pages, err := fetchAllPages(ctx, s.store, databaseID)
	if err != nil {
		return nil, err
	}

	summary := &primary.EnhanceSummary{}
	for _, page := range pages {
		updates := map[string]secondary.PropertyValue{
			ColProgress: secondary.StatusValue(ProgressNotStarted),
		}
		if err := s.store.UpdatePage(ctx, page.ID, updates); err != nil {
			fmt.Fprintf(s.out, "Row %s: status update failed: %v\n", page.ID, err)
			summary.Failed++
			continue
		}
		summary.Updated++
	}

	return summary, nil
}

var _ primary.EnhanceService = (*EnhanceServiceImpl)(nil)
