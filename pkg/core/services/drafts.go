package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/db"
)

// SaveDraftStore defines the database operations needed to save a draft
type SaveDraftStore interface {
	InsertDraft(ctx context.Context, draft *db.Draft) error
}

// ListDraftsStore defines the database operations needed to list drafts
type ListDraftsStore interface {
	ListDrafts(ctx context.Context) ([]db.Draft, error)
}

// LoadDraftStore defines the database operations needed to load a draft
type LoadDraftStore interface {
	GetDraft(ctx context.Context, id string) (*db.Draft, error)
	LatestDraft(ctx context.Context, year, month int) (*db.Draft, error)
}

// SaveDraft stores the user input for a month so it can be regenerated or published later.
// An empty name defaults to "Draft YYYY-MM" and an unset headcount to the configured one.
func SaveDraft(
	ctx context.Context,
	database SaveDraftStore,
	cfg *config.Config,
	logger *zap.Logger,
	name string,
	params GenerateParams,
) (*db.Draft, error) {
	perDay := params.PerDay
	if perDay <= 0 {
		perDay = cfg.PerDay
	}

	draft := db.NewDraft(
		strings.TrimSpace(name),
		params.Year,
		params.Month,
		perDay,
		params.QuotasText,
		params.LeavesText,
		params.RequestsText,
	)
	if draft.Name == "" {
		draft.Name = "Draft " + draft.Period()
	}

	logger.Debug("Saving draft",
		zap.String("id", draft.ID),
		zap.String("name", draft.Name),
		zap.String("period", draft.Period()))

	if err := database.InsertDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	return draft, nil
}

// ListDrafts returns every saved draft, newest first
func ListDrafts(ctx context.Context, database ListDraftsStore, logger *zap.Logger) ([]db.Draft, error) {
	logger.Debug("Fetching drafts")

	drafts, err := database.ListDrafts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	logger.Debug("Fetched drafts", zap.Int("count", len(drafts)))
	return drafts, nil
}

// LoadDraft fetches a draft by ID, or the latest draft for the month if id is empty
func LoadDraft(
	ctx context.Context,
	database LoadDraftStore,
	logger *zap.Logger,
	id string,
	year, month int,
) (*db.Draft, error) {
	if id != "" {
		logger.Debug("Loading draft by ID", zap.String("id", id))
		draft, err := database.GetDraft(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load draft: %w", err)
		}
		return draft, nil
	}

	logger.Debug("No draft ID provided, using latest draft for month",
		zap.Int("year", year),
		zap.Int("month", month))

	draft, err := database.LatestDraft(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return draft, nil
}

// ParamsFromDraft rebuilds the generation input saved in a draft
func ParamsFromDraft(draft *db.Draft) GenerateParams {
	return GenerateParams{
		Year:         draft.Year,
		Month:        draft.Month,
		PerDay:       draft.PerDay,
		QuotasText:   draft.QuotasText,
		LeavesText:   draft.LeavesText,
		RequestsText: draft.RequestsText,
	}
}
