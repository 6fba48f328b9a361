package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/example/waypoint/internal/ports/secondary"
)

// Store implements secondary.DatabaseStore.
type Store struct {
	client *Client
}

// NewStore creates a Store over an API client.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// GetDatabase fetches a database with its current schema.
func (s *Store) GetDatabase(ctx context.Context, id string) (*secondary.Database, error) {
	body, err := s.client.doRequest(ctx, http.MethodGet, "/databases/"+id, nil)
	if err != nil {
		return nil, err
	}
	var obj databaseObject
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("notion: failed to parse database: %w", err)
	}
	return decodeDatabase(obj), nil
}

// CreateDatabase creates a database under a parent page.
func (s *Store) CreateDatabase(ctx context.Context, req secondary.CreateDatabaseRequest) (*secondary.Database, error) {
	payload := map[string]any{
		"parent":     map[string]string{"type": "page_id", "page_id": req.ParentPageID},
		"title":      makeRichText(req.Title),
		"properties": encodeSpecs(req.Properties),
	}
	body, err := s.client.doRequest(ctx, http.MethodPost, "/databases", payload)
	if err != nil {
		return nil, err
	}
	s.client.pauseAfterWrite()

	var obj databaseObject
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("notion: failed to parse created database: %w", err)
	}
	return decodeDatabase(obj), nil
}

// UpdateProperties replaces the database's full property set. Callers
// merge additions into a copy of the fetched set before calling.
func (s *Store) UpdateProperties(ctx context.Context, id string, properties map[string]secondary.PropertySpec) error {
	payload := map[string]any{"properties": encodeSpecs(properties)}
	if _, err := s.client.doRequest(ctx, http.MethodPatch, "/databases/"+id, payload); err != nil {
		return err
	}
	s.client.pauseAfterWrite()
	return nil
}

// QueryPages fetches one batch of rows.
func (s *Store) QueryPages(ctx context.Context, databaseID string, cursor string, pageSize int) (*secondary.PageBatch, error) {
	if pageSize <= 0 {
		pageSize = 100
	}
	payload := map[string]any{"page_size": pageSize}
	if cursor != "" {
		payload["start_cursor"] = cursor
	}

	body, err := s.client.doRequest(ctx, http.MethodPost, "/databases/"+databaseID+"/query", payload)
	if err != nil {
		return nil, err
	}

	var response struct {
		Results    []pageObject `json:"results"`
		HasMore    bool         `json:"has_more"`
		NextCursor string       `json:"next_cursor"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("notion: failed to parse query response: %w", err)
	}

	batch := &secondary.PageBatch{HasMore: response.HasMore, NextCursor: response.NextCursor}
	for _, obj := range response.Results {
		batch.Pages = append(batch.Pages, decodePage(obj))
	}
	return batch, nil
}

// GetPage fetches a single row.
func (s *Store) GetPage(ctx context.Context, pageID string) (*secondary.Page, error) {
	body, err := s.client.doRequest(ctx, http.MethodGet, "/pages/"+pageID, nil)
	if err != nil {
		return nil, err
	}
	var obj pageObject
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("notion: failed to parse page: %w", err)
	}
	return decodePage(obj), nil
}

// CreatePage creates a row in a database.
func (s *Store) CreatePage(ctx context.Context, databaseID string, properties map[string]secondary.PropertyValue) (*secondary.Page, error) {
	payload := map[string]any{
		"parent":     map[string]string{"database_id": databaseID},
		"properties": encodeValues(properties),
	}
	body, err := s.client.doRequest(ctx, http.MethodPost, "/pages", payload)
	if err != nil {
		return nil, err
	}
	s.client.pauseAfterWrite()

	var obj pageObject
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("notion: failed to parse created page: %w", err)
	}
	return decodePage(obj), nil
}

// UpdatePage patches row properties in place.
func (s *Store) UpdatePage(ctx context.Context, pageID string, properties map[string]secondary.PropertyValue) error {
	payload := map[string]any{"properties": encodeValues(properties)}
	if _, err := s.client.doRequest(ctx, http.MethodPatch, "/pages/"+pageID, payload); err != nil {
		return err
	}
	s.client.pauseAfterWrite()
	return nil
}

// ArchivePage soft-deletes a row.
func (s *Store) ArchivePage(ctx context.Context, pageID string) error {
	payload := map[string]any{"archived": true}
	if _, err := s.client.doRequest(ctx, http.MethodPatch, "/pages/"+pageID, payload); err != nil {
		return err
	}
	s.client.pauseAfterWrite()
	return nil
}

// SearchDatabases lists every database the credential can see,
// following the continuation cursor until the remote reports no more.
func (s *Store) SearchDatabases(ctx context.Context) ([]*secondary.Database, error) {
	var all []*secondary.Database
	cursor := ""
	for {
		payload := map[string]any{
			"filter": map[string]string{"value": "database", "property": "object"},
		}
		if cursor != "" {
			payload["start_cursor"] = cursor
		}

		body, err := s.client.doRequest(ctx, http.MethodPost, "/search", payload)
		if err != nil {
			return nil, err
		}

		var response struct {
			Results    []databaseObject `json:"results"`
			HasMore    bool             `json:"has_more"`
			NextCursor string           `json:"next_cursor"`
		}
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("notion: failed to parse search response: %w", err)
		}

		for _, obj := range response.Results {
			all = append(all, decodeDatabase(obj))
		}
		if !response.HasMore {
			return all, nil
		}
		cursor = response.NextCursor
	}
}
