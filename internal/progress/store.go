// Package progress persists the learner's local state: the last-viewed
// tutorial section and the history of finalized quiz attempts. Storage
// is a single per-user SQLite file.
package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// lastSectionKey is the settings key recording the last-viewed section.
const lastSectionKey = "last_section"

// Store provides access to the local progress database.
type Store struct {
	db *sql.DB
}

// Open creates a Store connected to the SQLite database at dsn. It
// applies recommended pragmas and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS attempts (
			id       TEXT PRIMARY KEY,
			taken_at INTEGER NOT NULL,
			correct  INTEGER NOT NULL,
			total    INTEGER NOT NULL,
			percent  INTEGER NOT NULL,
			passed   INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_taken_at ON attempts (taken_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LastSection returns the last-viewed tutorial section ID, or "" if
// none has been recorded.
func (s *Store) LastSection(ctx context.Context) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, lastSectionKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query last section: %w", err)
	}
	return v, nil
}

// SetLastSection records the last-viewed tutorial section ID.
func (s *Store) SetLastSection(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		lastSectionKey, id)
	if err != nil {
		return fmt.Errorf("set last section: %w", err)
	}
	return nil
}

// AttemptRecord is one finalized quiz attempt as persisted.
type AttemptRecord struct {
	ID      string
	TakenAt time.Time
	Correct int
	Total   int
	Percent int
	Passed  bool
}

// AppendAttempt records a finalized quiz attempt.
func (s *Store) AppendAttempt(ctx context.Context, rec AttemptRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, taken_at, correct, total, percent, passed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.TakenAt.Unix(), rec.Correct, rec.Total, rec.Percent, rec.Passed)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

// Attempts returns all recorded attempts, most recent first.
func (s *Store) Attempts(ctx context.Context) ([]AttemptRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, taken_at, correct, total, percent, passed
		 FROM attempts ORDER BY taken_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var takenAt int64
		if err := rows.Scan(&rec.ID, &takenAt, &rec.Correct, &rec.Total, &rec.Percent, &rec.Passed); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.TakenAt = time.Unix(takenAt, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Reset wipes all stored progress: the last-viewed section and every
// attempt record.
func (s *Store) Reset(ctx context.Context) error {
	for _, stmt := range []string{`DELETE FROM settings`, `DELETE FROM attempts`} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. GITGYM_DB environment variable
// 2. $XDG_DATA_HOME/gitgym/gitgym.db
// 3. ~/.local/share/gitgym/gitgym.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("GITGYM_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "gitgym", "gitgym.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
