package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/internal/config"
)

// RosterPublisher writes rows to a tab of a spreadsheet, creating the tab if needed
type RosterPublisher interface {
	PublishRoster(spreadsheetID, tabTitle string, rows [][]string) error
}

// PublishedRoster describes what was written to the spreadsheet
type PublishedRoster struct {
	SpreadsheetID string
	TabTitle      string
	Rows          [][]string
}

// RosterTabTitle is the spreadsheet tab name for a month, e.g. "Duty Roster 2025-06"
func RosterTabTitle(year, month int) string {
	return fmt.Sprintf("Duty Roster %04d-%02d", year, month+1)
}

// PublishRoster writes a generated roster to the configured roster spreadsheet.
// An existing tab for the same month is overwritten.
func PublishRoster(
	publisher RosterPublisher,
	cfg *config.Config,
	logger *zap.Logger,
	generated *GeneratedRoster,
) (*PublishedRoster, error) {
	if cfg.RosterSheetID == "" {
		return nil, fmt.Errorf("rosterSheetID is not configured")
	}

	published := &PublishedRoster{
		SpreadsheetID: cfg.RosterSheetID,
		TabTitle:      RosterTabTitle(generated.Input.Year, generated.Input.Month),
		Rows:          RosterTable(generated),
	}

	logger.Debug("Publishing roster",
		zap.String("spreadsheet_id", published.SpreadsheetID),
		zap.String("tab", published.TabTitle),
		zap.Int("rows", len(published.Rows)))

	if err := publisher.PublishRoster(published.SpreadsheetID, published.TabTitle, published.Rows); err != nil {
		return nil, fmt.Errorf("failed to publish roster: %w", err)
	}

	return published, nil
}
