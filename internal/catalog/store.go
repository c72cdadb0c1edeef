package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"montage/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS assembly_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    job_id TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    project_path TEXT NOT NULL,
    mix_request_path TEXT NOT NULL,
    total_duration REAL NOT NULL,
    valid INTEGER NOT NULL,
    error_count INTEGER NOT NULL,
    warning_count INTEGER NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assembly_runs_job_id ON assembly_runs(job_id);
`

// ErrRunNotFound is returned when a run lookup matches nothing.
var ErrRunNotFound = errors.New("assembly run not found")

// Store manages assembly-run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database and applies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.CatalogPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordRun inserts a completed assembly run and returns the stored row.
func (s *Store) RecordRun(ctx context.Context, run Run) (*Run, error) {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO assembly_runs (
            job_id, title, project_path, mix_request_path,
            total_duration, valid, error_count, warning_count, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.JobID,
		run.Title,
		run.ProjectPath,
		run.MixRequestPath,
		run.TotalDuration,
		boolToInt(run.Valid),
		run.ErrorCount,
		run.WarningCount,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID fetches a recorded run by identifier.
func (s *Store) GetByID(ctx context.Context, id int64) (*Run, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, job_id, title, project_path, mix_request_path,
                total_duration, valid, error_count, warning_count, created_at
         FROM assembly_runs WHERE id = ?`,
		id,
	)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("get run %d: %w", id, err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 returns all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, job_id, title, project_path, mix_request_path,
                     total_duration, valid, error_count, warning_count, created_at
              FROM assembly_runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ListRunsByJob returns every recorded run for one job, newest first.
func (s *Store) ListRunsByJob(ctx context.Context, jobID string) ([]Run, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, job_id, title, project_path, mix_request_path,
                total_duration, valid, error_count, warning_count, created_at
         FROM assembly_runs WHERE job_id = ? ORDER BY id DESC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs for job %q: %w", jobID, err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var valid int
	var createdAt string
	if err := row.Scan(
		&run.ID,
		&run.JobID,
		&run.Title,
		&run.ProjectPath,
		&run.MixRequestPath,
		&run.TotalDuration,
		&valid,
		&run.ErrorCount,
		&run.WarningCount,
		&createdAt,
	); err != nil {
		return nil, err
	}
	run.Valid = valid != 0
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		run.CreatedAt = ts
	}
	return &run, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
