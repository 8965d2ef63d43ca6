package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/duty-roster/pkg/db"
)

var draftColumnNames = []string{
	"id", "name", "year", "month", "per_day", "quotas_text", "leaves_text", "requests_text", "created_at",
}

const draftID = "0d6c9a52-8f3e-4b1a-9c57-2e4f6a8b1d30"

func newMockDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewDBFromPool(mock), mock
}

func TestInsertDraft(t *testing.T) {
	store, mock := newMockDB(t)
	created := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	draft := &db.Draft{
		ID:           "4b6f3b5e-2c1d-4a4e-9a36-7d8e2b1f0c11",
		Name:         "June roster",
		Year:         2025,
		Month:        5,
		PerDay:       2,
		QuotasText:   "Alice: 5\nBob: 5",
		LeavesText:   "Alice: 3",
		RequestsText: "",
		CreatedAt:    created,
	}

	mock.ExpectExec("INSERT INTO draft").
		WithArgs(draft.ID, "June roster", 2025, 5, 2, "Alice: 5\nBob: 5", "Alice: 3", "", created).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.InsertDraft(context.Background(), draft)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertDraft_Error(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO draft").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := store.InsertDraft(context.Background(), db.NewDraft("x", 2025, 0, 1, "", "", ""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert draft")
}

func TestGetDraft(t *testing.T) {
	created := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
		check   func(t *testing.T, draft *db.Draft)
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(draftColumnNames).
					AddRow(draftID, "June", 2025, 5, 1, "Alice: 3", "", "Alice: 4", created)
				mock.ExpectQuery("FROM draft WHERE id").
					WithArgs(draftID).
					WillReturnRows(rows)
			},
			check: func(t *testing.T, draft *db.Draft) {
				assert.Equal(t, draftID, draft.ID)
				assert.Equal(t, "June", draft.Name)
				assert.Equal(t, 2025, draft.Year)
				assert.Equal(t, 5, draft.Month)
				assert.Equal(t, 1, draft.PerDay)
				assert.Equal(t, "Alice: 3", draft.QuotasText)
				assert.Equal(t, "Alice: 4", draft.RequestsText)
				assert.Equal(t, created, draft.CreatedAt)
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("FROM draft WHERE id").
					WithArgs(draftID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: db.ErrDraftNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockDB(t)
			tt.setup(mock)

			draft, err := store.GetDraft(context.Background(), draftID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, draft)
			} else {
				require.NoError(t, err)
				tt.check(t, draft)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetDraft_MalformedIDIsNotFound(t *testing.T) {
	store, mock := newMockDB(t)

	draft, err := store.GetDraft(context.Background(), "abc")

	assert.Nil(t, draft)
	assert.ErrorIs(t, err, db.ErrDraftNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDrafts(t *testing.T) {
	store, mock := newMockDB(t)
	newer := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(draftColumnNames).
		AddRow("draft-2", "July", 2025, 6, 2, "", "", "", newer).
		AddRow("draft-1", "June", 2025, 5, 1, "", "", "", older)
	mock.ExpectQuery("ORDER BY created_at DESC").WillReturnRows(rows)

	drafts, err := store.ListDrafts(context.Background())
	require.NoError(t, err)

	require.Len(t, drafts, 2)
	assert.Equal(t, "draft-2", drafts[0].ID)
	assert.Equal(t, "draft-1", drafts[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDrafts_QueryError(t *testing.T) {
	store, mock := newMockDB(t)
	mock.ExpectQuery("FROM draft").WillReturnError(errors.New("boom"))

	drafts, err := store.ListDrafts(context.Background())
	assert.Nil(t, drafts)
	assert.Contains(t, err.Error(), "failed to query drafts")
}

func TestLatestDraft(t *testing.T) {
	store, mock := newMockDB(t)
	created := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(draftColumnNames).
		AddRow("draft-9", "June v2", 2025, 5, 2, "Alice: 5", "", "", created)
	mock.ExpectQuery("WHERE year").WithArgs(2025, 5).WillReturnRows(rows)

	draft, err := store.LatestDraft(context.Background(), 2025, 5)
	require.NoError(t, err)
	assert.Equal(t, "draft-9", draft.ID)
	assert.Equal(t, "June v2", draft.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestDraft_NotFound(t *testing.T) {
	store, mock := newMockDB(t)
	mock.ExpectQuery("WHERE year").WithArgs(2025, 1).WillReturnError(pgx.ErrNoRows)

	draft, err := store.LatestDraft(context.Background(), 2025, 1)
	assert.Nil(t, draft)
	assert.ErrorIs(t, err, db.ErrDraftNotFound)
	assert.Contains(t, err.Error(), "2025-02")
}

func TestRunMigrations_AppliesPending(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT filename FROM schema_migrations").
		WillReturnRows(pgxmock.NewRows([]string{"filename"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS draft").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("001_create_draft.sql").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := store.RunMigrations(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_SkipsApplied(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT filename FROM schema_migrations").
		WillReturnRows(pgxmock.NewRows([]string{"filename"}).AddRow("001_create_draft.sql"))

	err := store.RunMigrations(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_RollsBackOnFailure(t *testing.T) {
	store, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT filename FROM schema_migrations").
		WillReturnRows(pgxmock.NewRows([]string{"filename"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS draft").
		WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err := store.RunMigrations(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute migration 001_create_draft.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}
