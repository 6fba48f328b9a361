// Package sqlite contains the SQLite implementation of the scan
// catalog repository.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/waypoint/internal/ports/secondary"
)

// CatalogRepository implements secondary.CatalogRepository with SQLite.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new SQLite catalog repository.
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Save upserts a scan record, keyed by database ID.
func (r *CatalogRepository) Save(ctx context.Context, record *secondary.ScanRecord) error {
	properties, err := json.Marshal(record.Properties)
	if err != nil {
		return fmt.Errorf("failed to encode properties: %w", err)
	}

	roadmap := 0
	if record.Roadmap {
		roadmap = 1
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO scans (database_id, title, properties, page_count, score, roadmap, scanned_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(database_id) DO UPDATE SET
			title = excluded.title,
			properties = excluded.properties,
			page_count = excluded.page_count,
			score = excluded.score,
			roadmap = excluded.roadmap,
			scanned_at = CURRENT_TIMESTAMP`,
		record.DatabaseID, record.Title, string(properties), record.PageCount, record.Score, roadmap,
	)
	if err != nil {
		return fmt.Errorf("failed to save scan record: %w", err)
	}

	return nil
}

// List retrieves scan records, most recently scanned first.
func (r *CatalogRepository) List(ctx context.Context) ([]*secondary.ScanRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT database_id, title, properties, page_count, score, roadmap, scanned_at FROM scans ORDER BY scanned_at DESC, database_id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan records: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ScanRecord
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scan records: %w", err)
	}

	return records, nil
}

// GetByDatabaseID retrieves one record, or nil when absent.
func (r *CatalogRepository) GetByDatabaseID(ctx context.Context, databaseID string) (*secondary.ScanRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT database_id, title, properties, page_count, score, roadmap, scanned_at FROM scans WHERE database_id = ?",
		databaseID,
	)

	record, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func scanRecord(scan func(dest ...any) error) (*secondary.ScanRecord, error) {
	var (
		record     secondary.ScanRecord
		properties string
		roadmap    int
		scannedAt  sql.NullString
	)

	err := scan(&record.DatabaseID, &record.Title, &properties, &record.PageCount, &record.Score, &roadmap, &scannedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog row: %w", err)
	}

	if err := json.Unmarshal([]byte(properties), &record.Properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	record.Roadmap = roadmap != 0
	record.ScannedAt = scannedAt.String

	return &record, nil
}
