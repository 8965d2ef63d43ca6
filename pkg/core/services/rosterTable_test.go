package services

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/pkg/core/roster"
)

// twoDayRoster is the first two days of June 2025 with one short day
func twoDayRoster() *GeneratedRoster {
	return &GeneratedRoster{
		Input: roster.Input{Year: 2025, Month: 5, PerDay: 2},
		Result: &roster.GenerationResult{
			Schedule: roster.Schedule{
				{Date: "2025-06-01", DayOfMonth: 1, DayOfWeek: 0, Staff: []string{"Alice", "Bob"}, IsWeekend: true},
				{Date: "2025-06-02", DayOfMonth: 2, DayOfWeek: 1, Staff: []string{"Carol"}, Warning: roster.UnderstaffedWarning},
			},
			Stats: []roster.Statistics{
				{Name: "Alice", Target: 5, Assigned: 1, WeekendShifts: 1},
				{Name: "Bob", Target: 5, Assigned: 1, WeekendShifts: 1},
				{Name: "Carol", Target: 4, Assigned: 1},
			},
		},
	}
}

func TestRosterRows(t *testing.T) {
	rows := RosterRows(twoDayRoster().Result.Schedule, 2)

	expected := [][]string{
		{"Date", "Day", "Duty 1", "Duty 2", "Warning"},
		{"2025-06-01", "Sunday", "Alice", "Bob", ""},
		{"2025-06-02", "Monday", "Carol", "", "Understaffed"},
	}
	assert.Equal(t, expected, rows)
}

func TestStatsRows(t *testing.T) {
	rows := StatsRows(twoDayRoster().Result.Stats)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Name", "Target", "Assigned", "Weekend Shifts"}, rows[0])
	assert.Equal(t, []string{"Alice", "5", "1", "1"}, rows[1])
	assert.Equal(t, []string{"Carol", "4", "1", "0"}, rows[3])
}

func TestExportRoster(t *testing.T) {
	var buf bytes.Buffer

	err := ExportRoster(&buf, twoDayRoster(), zap.NewNop())
	require.NoError(t, err)

	expected := "Date,Day,Duty 1,Duty 2,Warning\n" +
		"2025-06-01,Sunday,Alice,Bob,\n" +
		"2025-06-02,Monday,Carol,,Understaffed\n" +
		"\n" +
		"Name,Target,Assigned,Weekend Shifts\n" +
		"Alice,5,1,1\n" +
		"Bob,5,1,1\n" +
		"Carol,4,1,0\n"
	assert.Equal(t, expected, buf.String())
}

func TestExportRoster_QuotesNamesWithCommas(t *testing.T) {
	generated := twoDayRoster()
	generated.Result.Schedule[0].Staff = []string{"Smith, Alice", "Bob"}

	var buf bytes.Buffer
	require.NoError(t, ExportRoster(&buf, generated, zap.NewNop()))
	assert.Contains(t, buf.String(), `2025-06-01,Sunday,"Smith, Alice",Bob,`)
}

// mockPublisher records what would be written to the spreadsheet
type mockPublisher struct {
	spreadsheetID string
	tabTitle      string
	rows          [][]string
	err           error
}

func (m *mockPublisher) PublishRoster(spreadsheetID, tabTitle string, rows [][]string) error {
	m.spreadsheetID = spreadsheetID
	m.tabTitle = tabTitle
	m.rows = rows
	return m.err
}

func TestPublishRoster(t *testing.T) {
	cfg := testConfig()
	cfg.RosterSheetID = "sheet-123"
	publisher := &mockPublisher{}

	published, err := PublishRoster(publisher, cfg, zap.NewNop(), twoDayRoster())
	require.NoError(t, err)

	assert.Equal(t, "sheet-123", published.SpreadsheetID)
	assert.Equal(t, "Duty Roster 2025-06", published.TabTitle)
	assert.Equal(t, "sheet-123", publisher.spreadsheetID)
	assert.Equal(t, "Duty Roster 2025-06", publisher.tabTitle)
	assert.Equal(t, RosterTable(twoDayRoster()), publisher.rows)
	assert.Len(t, publisher.rows, 8)
}

func TestPublishRoster_Errors(t *testing.T) {
	t.Run("missing sheet id", func(t *testing.T) {
		publisher := &mockPublisher{}
		published, err := PublishRoster(publisher, testConfig(), zap.NewNop(), twoDayRoster())
		assert.Nil(t, published)
		assert.Contains(t, err.Error(), "rosterSheetID")
		assert.Empty(t, publisher.tabTitle)
	})

	t.Run("publisher fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.RosterSheetID = "sheet-123"
		publisher := &mockPublisher{err: errors.New("quota exceeded")}

		published, err := PublishRoster(publisher, cfg, zap.NewNop(), twoDayRoster())
		assert.Nil(t, published)
		assert.Contains(t, err.Error(), "failed to publish roster")
	})
}

func TestRosterTabTitle(t *testing.T) {
	assert.Equal(t, "Duty Roster 2025-01", RosterTabTitle(2025, 0))
	assert.Equal(t, "Duty Roster 2025-12", RosterTabTitle(2025, 11))
}
