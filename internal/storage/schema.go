package storage

import (
	"database/sql"
	"fmt"
)

// Schema version tracking
const currentSchemaVersion = 1

// initializeSchema creates all tables, idempotently.
func (db *DB) initializeSchema() error {
	return db.WithTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			)
		`); err != nil {
			return fmt.Errorf("failed to create schema_version table: %w", err)
		}

		if _, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS runs (
				run_id        TEXT PRIMARY KEY,
				input_path    TEXT NOT NULL,
				output_path   TEXT NOT NULL,
				input_count   INTEGER NOT NULL,
				kept_count    INTEGER NOT NULL,
				removed_count INTEGER NOT NULL,
				skipped_count INTEGER NOT NULL,
				duration_ms   INTEGER NOT NULL,
				created_at    TEXT NOT NULL
			)
		`); err != nil {
			return fmt.Errorf("failed to create runs table: %w", err)
		}

		if _, err := tx.Exec(`
			CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC)
		`); err != nil {
			return fmt.Errorf("failed to create runs index: %w", err)
		}

		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO schema_version (version) VALUES (?)
		`, currentSchemaVersion); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}

		return nil
	})
}
