package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh launchlist installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests load it
// via GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so a
// repository that references a missing column fails its tests immediately.
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Key-value state (one row per checklist storage key)
CREATE TABLE IF NOT EXISTS kv_store (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Checklist audit events
CREATE TABLE IF NOT EXISTS checklist_events (
	id TEXT PRIMARY KEY,
	storage_key TEXT NOT NULL,
	task_id TEXT,
	action TEXT NOT NULL CHECK(action IN ('complete', 'reopen', 'reset')),
	actor_id TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_checklist_events_key ON checklist_events(storage_key, created_at);
`

// InitSchema brings the schema of conn up to date.
// Fresh databases get SchemaSQL directly and are stamped at the latest version;
// existing ones run pending migrations.
func InitSchema(conn *sql.DB) error {
	var tableCount int
	err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(conn)
	}

	var existing int
	err = conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = 'kv_store'").Scan(&existing)
	if err != nil {
		return err
	}
	if existing > 0 {
		// Pre-versioning database: migrate from scratch
		return RunMigrations(conn)
	}

	if _, err := conn.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := createVersionTable(conn); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to stamp schema version: %w", err)
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
