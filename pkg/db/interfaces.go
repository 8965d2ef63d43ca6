package db

import "context"

// DraftStore defines the interface for draft database operations.
// Both the PostgreSQL and SQLite stores implement it.
type DraftStore interface {
	InsertDraft(ctx context.Context, draft *Draft) error
	GetDraft(ctx context.Context, id string) (*Draft, error)
	ListDrafts(ctx context.Context) ([]Draft, error)
	LatestDraft(ctx context.Context, year, month int) (*Draft, error)
}

// Database is a DraftStore that holds a connection
type Database interface {
	DraftStore
	Close()
}
