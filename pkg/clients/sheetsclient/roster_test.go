package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/sheets/v4"
)

func TestFindSheet(t *testing.T) {
	spreadsheet := &sheets.Spreadsheet{
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: "Duty Roster 2025-05", SheetId: 1}},
			{Properties: &sheets.SheetProperties{Title: "Duty Roster 2025-06", SheetId: 2}},
			{},
		},
	}

	sheet := findSheet(spreadsheet, "Duty Roster 2025-06")
	require.NotNil(t, sheet)
	assert.Equal(t, int64(2), sheet.Properties.SheetId)

	assert.Nil(t, findSheet(spreadsheet, "Duty Roster 2025-07"))
	assert.Nil(t, findSheet(&sheets.Spreadsheet{}, "Duty Roster 2025-06"))
}

func TestToValues(t *testing.T) {
	rows := [][]string{
		{"Date", "Day", "Duty 1", "Warning"},
		{},
		{"2025-06-01", "Sunday", "Alice", ""},
	}

	values := toValues(rows)

	require.Len(t, values, 3)
	assert.Equal(t, []interface{}{"Date", "Day", "Duty 1", "Warning"}, values[0])
	assert.Empty(t, values[1])
	assert.Equal(t, []interface{}{"2025-06-01", "Sunday", "Alice", ""}, values[2])
}

func TestQuoteTab(t *testing.T) {
	assert.Equal(t, "'Duty Roster 2025-06'", quoteTab("Duty Roster 2025-06"))
}
