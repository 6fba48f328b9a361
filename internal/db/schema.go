package db

// SchemaSQL is the authoritative schema for the local scan catalog.
// The statements are additive (IF NOT EXISTS) so re-opening an existing
// catalog is a no-op. Tests load this via GetSchemaSQL() instead of
// hardcoding their own CREATE TABLE statements.
const SchemaSQL = `
-- Scans (one row per remote database discovered by a workspace scan)
CREATE TABLE IF NOT EXISTS scans (
	database_id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	properties TEXT NOT NULL DEFAULT '[]',
	page_count INTEGER NOT NULL DEFAULT 0,
	score INTEGER NOT NULL DEFAULT 0,
	roadmap INTEGER NOT NULL DEFAULT 0,
	scanned_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scans_scanned_at ON scans(scanned_at);
CREATE INDEX IF NOT EXISTS idx_scans_score ON scans(score);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
