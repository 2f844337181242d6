package ledger

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"pixpress/internal/convert"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users delete the history database to adopt the new schema.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Run summarizes one recorded batch run.
type Run struct {
	ID         string
	Directory  string
	StartedAt  time.Time
	FinishedAt time.Time
	Total      int
	Failed     int
}

// Outcome is one recorded encoder invocation of a run.
type Outcome struct {
	Source     string
	Output     string
	Format     string
	DurationMS int64
	Error      string
}

// Store persists batch run history in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
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

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Record persists a batch result and its per-file outcomes atomically.
func (s *Store) Record(ctx context.Context, result *convert.Result) error {
	if result == nil {
		return errors.New("result is nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO runs (id, directory, started_at, finished_at, total, failed)
         VALUES (?, ?, ?, ?, ?, ?)`,
		result.RunID,
		result.Directory,
		result.StartedAt.UTC().Format(time.RFC3339Nano),
		result.FinishedAt.UTC().Format(time.RFC3339Nano),
		len(result.Outcomes),
		result.Failed(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, outcome := range result.Outcomes {
		var errText any
		if outcome.Err != nil {
			errText = outcome.Err.Error()
		}
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO outcomes (run_id, source, output, format, duration_ms, error)
             VALUES (?, ?, ?, ?, ?, ?)`,
			result.RunID,
			outcome.Source,
			outcome.Output,
			string(outcome.Format),
			outcome.Duration.Milliseconds(),
			errText,
		)
		if err != nil {
			return fmt.Errorf("insert outcome: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, most recent first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, directory, started_at, finished_at, total, failed
         FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run         Run
			startedRaw  string
			finishedRaw string
		)
		if err := rows.Scan(&run.ID, &run.Directory, &startedRaw, &finishedRaw, &run.Total, &run.Failed); err != nil {
			return nil, err
		}
		if started, err := time.Parse(time.RFC3339Nano, startedRaw); err == nil {
			run.StartedAt = started
		}
		if finished, err := time.Parse(time.RFC3339Nano, finishedRaw); err == nil {
			run.FinishedAt = finished
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunOutcomes returns the recorded outcomes for a run in insertion order.
func (s *Store) RunOutcomes(ctx context.Context, runID string) ([]Outcome, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT source, output, format, duration_ms, error
         FROM outcomes WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []Outcome
	for rows.Next() {
		var (
			outcome Outcome
			errText sql.NullString
		)
		if err := rows.Scan(&outcome.Source, &outcome.Output, &outcome.Format, &outcome.DurationMS, &errText); err != nil {
			return nil, err
		}
		outcome.Error = errText.String
		outcomes = append(outcomes, outcome)
	}
	return outcomes, rows.Err()
}
