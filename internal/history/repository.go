// Package history persists one record per bulk download run in a local
// SQLite database, so past runs stay inspectable from the CLI.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/bulkget/internal/model"

	_ "modernc.org/sqlite"
)

// Run is one recorded bulk download run
type Run struct {
	ID              string
	URL             string
	TotalVideos     int
	Successful      int
	Failed          int
	Skipped         int
	OutputDirectory string
	StartedAt       time.Time
	FinishedAt      time.Time
}

// Repository stores runs in SQLite
type Repository struct {
	db *sql.DB
}

// Open creates the database file (and parent directories) if needed and
// prepares the schema
func Open(path string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	// WAL and busy timeout for concurrent readers; failure is not critical
	db.Exec(`
		PRAGMA busy_timeout = 5000;
		PRAGMA journal_mode = WAL;
	`)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			total_videos INTEGER NOT NULL,
			successful INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			output_directory TEXT NOT NULL,
			started_at TIMESTAMP NOT NULL,
			finished_at TIMESTAMP NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close releases the underlying database handle
func (r *Repository) Close() error {
	return r.db.Close()
}

// Record stores one finished bulk run under a fresh id
func (r *Repository) Record(url string, result *model.BulkResult, startedAt, finishedAt time.Time) (Run, error) {
	run := Run{
		ID:              uuid.NewString(),
		URL:             url,
		TotalVideos:     result.TotalVideos,
		Successful:      result.Successful,
		Failed:          result.Failed,
		Skipped:         result.Skipped,
		OutputDirectory: result.OutputDirectory,
		StartedAt:       startedAt.UTC(),
		FinishedAt:      finishedAt.UTC(),
	}

	_, err := r.db.Exec(`
		INSERT INTO runs (id, url, total_videos, successful, failed, skipped, output_directory, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.URL, run.TotalVideos, run.Successful, run.Failed, run.Skipped,
		run.OutputDirectory, run.StartedAt, run.FinishedAt,
	)
	if err != nil {
		return Run{}, fmt.Errorf("failed to record run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first. limit <= 0 means all.
func (r *Repository) List(limit int) ([]Run, error) {
	query := `
		SELECT id, url, total_videos, successful, failed, skipped, output_directory, started_at, finished_at
		FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.URL, &run.TotalVideos, &run.Successful, &run.Failed,
			&run.Skipped, &run.OutputDirectory, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Clear deletes every recorded run
func (r *Repository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM runs`)
	return err
}
