package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

// TitleServiceImpl implements the TitleService interface.
type TitleServiceImpl struct {
	store secondary.DatabaseStore
	out   io.Writer

	// topicColumn caches the resolved title column between the plan
	// and apply halves of a run.
	topicColumn string
}

// NewTitleService creates a new TitleService with injected dependencies.
func NewTitleService(store secondary.DatabaseStore, out io.Writer) *TitleServiceImpl {
	if out == nil {
		out = io.Discard
	}
	return &TitleServiceImpl{store: store, out: out}
}

// CleanTitle strips the hyphen-suffixed tail from a topic title. The
// tail duplicates content that lives in the details column.
func CleanTitle(title string) string {
	for _, separator := range []string{" - ", " -", "- "} {
		if idx := strings.Index(title, separator); idx >= 0 {
			return strings.TrimSpace(title[:idx])
		}
	}
	return strings.TrimSpace(title)
}

// PlanTitleCleanup lists the rows whose titles would change, without
// writing anything.
func (s *TitleServiceImpl) PlanTitleCleanup(ctx context.Context, databaseID string) ([]*primary.TitleChange, error) {
	database, err := s.store.GetDatabase(ctx, databaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch database %s: %w", databaseID, err)
	}
	fields, err := ResolveFields(database.Properties)
	if err != nil {
		return nil, err
	}
	s.topicColumn = fields.MustName(FieldTopic)

	pages, err := fetchAllPages(ctx, s.store, databaseID)
	if err != nil {
		return nil, err
	}

	var changes []*primary.TitleChange
	for _, page := range pages {
		current := page.Properties[s.topicColumn].PlainText()
		cleaned := CleanTitle(current)
		if cleaned == current {
			continue
		}
		changes = append(changes, &primary.TitleChange{
			PageID:   page.ID,
			Week:     weekOf(page, fields),
			OldTitle: current,
			NewTitle: cleaned,
		})
	}

	return changes, nil
}

// ApplyTitleCleanup patches the given changes in place. One row's
// failure is reported and the loop continues.
func (s *TitleServiceImpl) ApplyTitleCleanup(ctx context.Context, changes []*primary.TitleChange) (*primary.MaintenanceSummary, error) {
	if s.topicColumn == "" {
		return nil, NewConfigurationError(FieldTopic, "title cleanup must be planned before applying")
	}

	summary := &primary.MaintenanceSummary{}
	for _, change := range changes {
		updates := map[string]secondary.PropertyValue{
			s.topicColumn: secondary.TitleValue(change.NewTitle),
		}
		if err := s.store.UpdatePage(ctx, change.PageID, updates); err != nil {
			fmt.Fprintf(s.out, "Week %d: title update failed: %v\n", change.Week, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(s.out, "Week %d: %s\n", change.Week, change.NewTitle)
		summary.Updated++
	}

	return summary, nil
}

var _ primary.TitleService = (*TitleServiceImpl)(nil)
