package sheetsclient

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// PublishRoster writes rows to the tab titled tabTitle, starting at A1.
// The tab is created if it doesn't exist; an existing tab is cleared first so rows
// from a longer previous roster don't linger.
func (c *Client) PublishRoster(spreadsheetID, tabTitle string, rows [][]string) error {
	// Check if tab exists
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(c.ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	if findSheet(spreadsheet, tabTitle) == nil {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	} else {
		if err := c.ClearValues(spreadsheetID, quoteTab(tabTitle)); err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	}

	if err := c.UpdateValues(spreadsheetID, quoteTab(tabTitle)+"!A1", toValues(rows)); err != nil {
		return fmt.Errorf("failed to write roster to tab: %w", err)
	}

	return nil
}

// findSheet returns the sheet with the given title, or nil
func findSheet(spreadsheet *sheets.Spreadsheet, title string) *sheets.Sheet {
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return sheet
		}
	}
	return nil
}

// quoteTab quotes a tab title for use in A1 notation
func quoteTab(title string) string {
	return "'" + title + "'"
}

// toValues converts string rows to the cell values the API expects
func toValues(rows [][]string) [][]interface{} {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		values = append(values, cells)
	}
	return values
}
