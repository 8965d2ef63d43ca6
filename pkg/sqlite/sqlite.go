package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jakechorley/duty-roster/pkg/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS draft (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	year INTEGER NOT NULL,
	month INTEGER NOT NULL CHECK (month BETWEEN 0 AND 11),
	per_day INTEGER NOT NULL CHECK (per_day >= 1),
	quotas_text TEXT NOT NULL DEFAULT '',
	leaves_text TEXT NOT NULL DEFAULT '',
	requests_text TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS draft_period_idx ON draft (year, month, created_at);
`

// timeLayout is fixed width so created_at sorts correctly as text
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const draftColumns = `id, name, year, month, per_day, quotas_text, leaves_text, requests_text, created_at`

// DB provides draft storage in a local SQLite file
type DB struct {
	db *sql.DB
}

var _ db.Database = (*DB)(nil)

// NewDB opens or creates the SQLite database at path and applies the schema
func NewDB(ctx context.Context, path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single writer avoids SQLITE_BUSY from the CLI's own goroutines
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
	}

	return &DB{db: sqlDB}, nil
}

// Close closes the underlying database
func (d *DB) Close() {
	_ = d.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraft(row rowScanner) (*db.Draft, error) {
	var d db.Draft
	var createdAt string
	if err := row.Scan(&d.ID, &d.Name, &d.Year, &d.Month, &d.PerDay,
		&d.QuotasText, &d.LeavesText, &d.RequestsText, &createdAt); err != nil {
		return nil, err
	}

	parsed, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
	}
	d.CreatedAt = parsed.UTC()

	return &d, nil
}

// InsertDraft inserts a new draft record
func (d *DB) InsertDraft(ctx context.Context, draft *db.Draft) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO draft (`+draftColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		draft.ID, draft.Name, draft.Year, draft.Month, draft.PerDay,
		draft.QuotasText, draft.LeavesText, draft.RequestsText,
		draft.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert draft: %w", err)
	}
	return nil
}

// GetDraft retrieves a draft by ID
func (d *DB) GetDraft(ctx context.Context, id string) (*db.Draft, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+draftColumns+` FROM draft WHERE id = ?`, id)

	draft, err := scanDraft(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get draft %s: %w", id, db.ErrDraftNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft %s: %w", id, err)
	}
	return draft, nil
}

// ListDrafts retrieves all drafts, newest first
func (d *DB) ListDrafts(ctx context.Context) ([]db.Draft, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT `+draftColumns+` FROM draft ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query drafts: %w", err)
	}
	defer rows.Close()

	var drafts []db.Draft
	for rows.Next() {
		draft, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		drafts = append(drafts, *draft)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drafts: %w", err)
	}

	return drafts, nil
}

// LatestDraft retrieves the most recent draft for a month
func (d *DB) LatestDraft(ctx context.Context, year, month int) (*db.Draft, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT `+draftColumns+`
		FROM draft
		WHERE year = ? AND month = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, year, month)

	draft, err := scanDraft(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get latest draft for %04d-%02d: %w", year, month+1, db.ErrDraftNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest draft for %04d-%02d: %w", year, month+1, err)
	}
	return draft, nil
}
