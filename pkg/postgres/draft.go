package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/duty-roster/pkg/db"
)

const draftColumns = `id::text, name, year, month, per_day, quotas_text, leaves_text, requests_text, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraft(row rowScanner) (*db.Draft, error) {
	var d db.Draft
	if err := row.Scan(&d.ID, &d.Name, &d.Year, &d.Month, &d.PerDay,
		&d.QuotasText, &d.LeavesText, &d.RequestsText, &d.CreatedAt); err != nil {
		return nil, err
	}
	d.CreatedAt = d.CreatedAt.UTC()
	return &d, nil
}

// InsertDraft inserts a new draft record
func (d *DB) InsertDraft(ctx context.Context, draft *db.Draft) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO draft (id, name, year, month, per_day, quotas_text, leaves_text, requests_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, draft.ID, draft.Name, draft.Year, draft.Month, draft.PerDay,
		draft.QuotasText, draft.LeavesText, draft.RequestsText, draft.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert draft: %w", err)
	}
	return nil
}

// GetDraft retrieves a draft by ID
func (d *DB) GetDraft(ctx context.Context, id string) (*db.Draft, error) {
	// Draft IDs are UUIDs, so anything else cannot match a row
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("failed to get draft %s: %w", id, db.ErrDraftNotFound)
	}

	row := d.pool.QueryRow(ctx, `SELECT `+draftColumns+` FROM draft WHERE id = $1`, id)

	draft, err := scanDraft(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get draft %s: %w", id, db.ErrDraftNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft %s: %w", id, err)
	}
	return draft, nil
}

// ListDrafts retrieves all drafts, newest first
func (d *DB) ListDrafts(ctx context.Context) ([]db.Draft, error) {
	rows, err := d.pool.Query(ctx, `SELECT `+draftColumns+` FROM draft ORDER BY created_at DESC`)
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
	row := d.pool.QueryRow(ctx, `
		SELECT `+draftColumns+`
		FROM draft
		WHERE year = $1 AND month = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, year, month)

	draft, err := scanDraft(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get latest draft for %04d-%02d: %w", year, month+1, db.ErrDraftNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest draft for %04d-%02d: %w", year, month+1, err)
	}
	return draft, nil
}
