// Package app implements the primary-port services with injected
// secondary ports. Services hold no state beyond their collaborators;
// every remote interaction is read-before-write so re-runs stay
// idempotent.
package app

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

// SchemaServiceImpl implements the SchemaService interface.
type SchemaServiceImpl struct {
	store        secondary.DatabaseStore
	parentPageID string
	out          io.Writer
}

// NewSchemaService creates a new SchemaService with injected dependencies.
func NewSchemaService(store secondary.DatabaseStore, parentPageID string, out io.Writer) *SchemaServiceImpl {
	if out == nil {
		out = io.Discard
	}
	return &SchemaServiceImpl{
		store:        store,
		parentPageID: parentPageID,
		out:          out,
	}
}

// EnsureDatabase verifies an existing database or creates a fresh one
// under the parent page with the full target schema.
func (s *SchemaServiceImpl) EnsureDatabase(ctx context.Context, databaseID string) (*primary.EnsureDatabaseResponse, error) {
	if databaseID != "" {
		database, err := s.store.GetDatabase(ctx, databaseID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch database %s: %w", databaseID, err)
		}
		return &primary.EnsureDatabaseResponse{
			DatabaseID: database.ID,
			Title:      database.Title,
			Created:    false,
		}, nil
	}

	if s.parentPageID == "" {
		return nil, NewConfigurationError("parent page", "no database ID given and no parent page configured")
	}

	database, err := s.store.CreateDatabase(ctx, secondary.CreateDatabaseRequest{
		ParentPageID: s.parentPageID,
		Title:        DatabaseTitle,
		Properties:   TargetSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	fmt.Fprintf(s.out, "Created database %s\n", database.ID)
	return &primary.EnsureDatabaseResponse{
		DatabaseID: database.ID,
		Title:      database.Title,
		Created:    true,
	}, nil
}

// EnsureSchema adds the target columns missing from the remote schema.
// The remote update replaces the full property set, so the missing
// columns are merged into a copy of the fetched set before the single
// additive write. When nothing is missing no write is issued.
func (s *SchemaServiceImpl) EnsureSchema(ctx context.Context, req primary.EnsureSchemaRequest) (*primary.EnsureSchemaResponse, error) {
	database, err := s.store.GetDatabase(ctx, req.DatabaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch database %s: %w", req.DatabaseID, err)
	}

	target := TargetSchema()
	var missing []string
	for name := range target {
		if _, exists := database.Properties[name]; !exists {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return &primary.EnsureSchemaResponse{Skipped: len(target)}, nil
	}
	sort.Strings(missing)

	merged := make(map[string]secondary.PropertySpec, len(database.Properties)+len(missing))
	for name, spec := range database.Properties {
		merged[name] = spec
	}
	for _, name := range missing {
		merged[name] = target[name]
	}

	if err := s.store.UpdateProperties(ctx, req.DatabaseID, merged); err != nil {
		return nil, fmt.Errorf("failed to add columns %v: %w", missing, err)
	}

	fmt.Fprintf(s.out, "Added columns: %v\n", missing)
	return &primary.EnsureSchemaResponse{
		Added:   missing,
		Skipped: len(target) - len(missing),
	}, nil
}

// ensureColumn adds a single column when absent, merging it into a
// copy of the fetched property set. Shared by the enhance and subtask
// services.
func ensureColumn(ctx context.Context, store secondary.DatabaseStore, databaseID, name string, spec secondary.PropertySpec) (added bool, err error) {
	database, err := store.GetDatabase(ctx, databaseID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch database %s: %w", databaseID, err)
	}

	if _, exists := database.Properties[name]; exists {
		return false, nil
	}

	merged := make(map[string]secondary.PropertySpec, len(database.Properties)+1)
	for existing, spec := range database.Properties {
		merged[existing] = spec
	}
	merged[name] = spec

	if err := store.UpdateProperties(ctx, databaseID, merged); err != nil {
		return false, fmt.Errorf("failed to add column %s: %w", name, err)
	}
	return true, nil
}

// fetchAllPages drains the paginated row query, carrying the
// continuation cursor until the remote reports no more pages.
func fetchAllPages(ctx context.Context, store secondary.DatabaseStore, databaseID string) ([]*secondary.Page, error) {
	var pages []*secondary.Page
	cursor := ""
	for {
		batch, err := store.QueryPages(ctx, databaseID, cursor, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to query rows: %w", err)
		}
		pages = append(pages, batch.Pages...)
		// A more-pages answer without a continuation cursor would loop
		// on the first page forever.
		if !batch.HasMore || batch.NextCursor == "" {
			return pages, nil
		}
		cursor = batch.NextCursor
	}
}

// weekOf reads the natural key from a row through the resolved week
// column. Returns 0 when the row has no usable week number.
func weekOf(page *secondary.Page, fields *FieldMap) int {
	value, ok := page.Properties[fields.MustName(FieldWeek)]
	if !ok || value.Number == nil {
		return 0
	}
	return int(*value.Number)
}

var _ primary.SchemaService = (*SchemaServiceImpl)(nil)
