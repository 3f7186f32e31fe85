package storage

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Run represents one completed dedupe run
type Run struct {
	RunID        string    `json:"runId"`
	InputPath    string    `json:"inputPath"`
	OutputPath   string    `json:"outputPath"`
	InputCount   int       `json:"inputCount"`
	KeptCount    int       `json:"keptCount"`
	RemovedCount int       `json:"removedCount"`
	SkippedCount int       `json:"skippedCount"`
	DurationMs   int64     `json:"durationMs"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RecordRun persists a completed run and returns its generated id
func (db *DB) RecordRun(run Run) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	err := db.WithTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO runs (
				run_id, input_path, output_path, input_count,
				kept_count, removed_count, skipped_count, duration_ms, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, run.RunID, run.InputPath, run.OutputPath, run.InputCount,
			run.KeptCount, run.RemovedCount, run.SkippedCount, run.DurationMs,
			run.CreatedAt.Format(time.RFC3339))
		return err
	})
	if err != nil {
		return "", err
	}

	return run.RunID, nil
}

// RecentRuns returns up to limit runs, most recent first
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Query(`
		SELECT run_id, input_path, output_path, input_count,
		       kept_count, removed_count, skipped_count, duration_ms, created_at
		FROM runs
		ORDER BY created_at DESC, run_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.RunID, &run.InputPath, &run.OutputPath,
			&run.InputCount, &run.KeptCount, &run.RemovedCount,
			&run.SkippedCount, &run.DurationMs, &createdAt); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			run.CreatedAt = ts
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
