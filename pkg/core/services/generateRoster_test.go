package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/core/roster"
)

const februaryQuotas = `# plenty of spare quota
A: 5
B: 5
C: 5
D: 5
E: 5
F: 5
G: 5
H: 5`

func testConfig() *config.Config {
	return &config.Config{
		PerDay:         1,
		MaxTrials:      100,
		Workers:        2,
		TimeoutSeconds: 30,
		Storage:        config.StorageConfig{Driver: config.DriverSQLite, DSN: "roster.db"},
	}
}

func seedOf(v uint64) *uint64 {
	return &v
}

func TestGenerateRoster_Success(t *testing.T) {
	params := GenerateParams{
		Year:         2026,
		Month:        1,
		QuotasText:   februaryQuotas,
		LeavesText:   "A: 3, 4\nB: 40",
		RequestsText: "C: 10",
		Seed:         seedOf(11),
	}

	generated, err := GenerateRoster(context.Background(), testConfig(), zap.NewNop(), params)
	require.NoError(t, err)

	result := generated.Result
	assert.True(t, result.Success)
	assert.Equal(t, uint64(11), result.Seed)
	assert.Len(t, result.Schedule, 28)
	assert.Empty(t, generated.Violations)
	assert.Empty(t, result.Logs)

	assert.Equal(t, 1, generated.Input.PerDay)
	assert.Len(t, generated.Input.Quotas, 8)
	assert.Equal(t, []roster.DayConstraint{{Name: "A", Days: []int{3, 4}}, {Name: "B", Days: []int{}}}, generated.Input.Leaves)

	assert.NotContains(t, result.Schedule[2].Staff, "A")
	assert.NotContains(t, result.Schedule[3].Staff, "A")
	assert.Contains(t, result.Schedule[9].Staff, "C")
}

func TestGenerateRoster_RecurringLeavesAreApplied(t *testing.T) {
	cfg := testConfig()
	cfg.RecurringLeaves = []config.RecurringLeave{{Name: "A", RRule: "FREQ=WEEKLY;BYDAY=MO"}}

	params := GenerateParams{Year: 2026, Month: 1, QuotasText: februaryQuotas, Seed: seedOf(3)}
	generated, err := GenerateRoster(context.Background(), cfg, zap.NewNop(), params)
	require.NoError(t, err)

	require.Len(t, generated.Input.Leaves, 1)
	assert.Equal(t, []int{2, 9, 16, 23}, generated.Input.Leaves[0].Days)

	for _, day := range generated.Result.Schedule {
		if day.DayOfWeek == 1 {
			assert.NotContains(t, day.Staff, "A", day.Date)
		}
	}
}

func TestGenerateRoster_PerDayOverride(t *testing.T) {
	params := GenerateParams{Year: 2026, Month: 1, PerDay: 2, QuotasText: februaryQuotas, Seed: seedOf(1)}

	generated, err := GenerateRoster(context.Background(), testConfig(), zap.NewNop(), params)
	require.NoError(t, err)

	assert.Equal(t, 2, generated.Input.PerDay)
	for _, day := range generated.Result.Schedule {
		assert.LessOrEqual(t, len(day.Staff), 2)
	}
}

func TestGenerateRoster_CapacityWarning(t *testing.T) {
	params := GenerateParams{Year: 2025, Month: 5, QuotasText: "A: 5\nB: 5", Seed: seedOf(7)}

	generated, err := GenerateRoster(context.Background(), testConfig(), zap.NewNop(), params)
	require.NoError(t, err)

	require.NotEmpty(t, generated.Result.Logs)
	assert.Equal(t, "Warning: total quota (10) is less than required slots (30).", generated.Result.Logs[0])
	assert.Equal(t, 20, generated.Result.UnfilledSlots)
}

func TestGenerateRoster_AlternateDayRule(t *testing.T) {
	tests := []struct {
		name        string
		configAllow bool
		paramAllow  bool
		want        bool
	}{
		{"penalised by default", false, false, false},
		{"allowed by config", true, false, true},
		{"allowed for one run", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.AllowAlternateDays = tt.configAllow
			params := GenerateParams{
				Year:               2026,
				Month:              1,
				QuotasText:         februaryQuotas,
				Seed:               seedOf(2),
				AllowAlternateDays: tt.paramAllow,
			}

			generated, err := GenerateRoster(context.Background(), cfg, zap.NewNop(), params)
			require.NoError(t, err)

			assert.Equal(t, tt.want, generated.Rules.AllowAlternateDays)
			assert.True(t, generated.Result.Success)
			assert.Empty(t, generated.Violations)
		})
	}
}

func TestGenerateRoster_ManualEdits(t *testing.T) {
	base := GenerateParams{Year: 2026, Month: 1, QuotasText: februaryQuotas, Seed: seedOf(11)}
	original, err := GenerateRoster(context.Background(), testConfig(), zap.NewNop(), base)
	require.NoError(t, err)

	onDuty := original.Result.Schedule[4].Staff[0]
	replacement := "A"
	if onDuty == "A" {
		replacement = "B"
	}

	t.Run("swap", func(t *testing.T) {
		params := base
		params.UnassignText = onDuty + ": 5"
		params.AssignText = replacement + ": 5"

		generated, err := GenerateRoster(context.Background(), testConfig(), zap.NewNop(), params)
		require.NoError(t, err)

		result := generated.Result
		assert.Equal(t, []string{replacement}, result.Schedule[4].Staff)
		assert.True(t, result.Success)
		assert.Contains(t, result.Logs, "Edit: "+onDuty+" removed from Day 5.")
		assert.Contains(t, result.Logs, "Edit: "+replacement+" assigned to Day 5.")

		for i, stat := range result.Stats {
			before := original.Result.Stats[i].Assigned
			switch stat.Name {
			case onDuty:
				assert.Equal(t, before-1, stat.Assigned)
			case replacement:
				assert.Equal(t, before+1, stat.Assigned)
			default:
				assert.Equal(t, before, stat.Assigned, stat.Name)
			}
		}
	})

	t.Run("unassign leaves the day understaffed", func(t *testing.T) {
		params := base
		params.UnassignText = onDuty + ": 5"

		generated, err := GenerateRoster(context.Background(), testConfig(), zap.NewNop(), params)
		require.NoError(t, err)

		result := generated.Result
		assert.Empty(t, result.Schedule[4].Staff)
		assert.Equal(t, roster.UnderstaffedWarning, result.Schedule[4].Warning)
		assert.False(t, result.Success)
		assert.Equal(t, 1, result.UnfilledSlots)
	})

	t.Run("unknown person", func(t *testing.T) {
		params := base
		params.AssignText = "Nobody: 3"

		generated, err := GenerateRoster(context.Background(), testConfig(), zap.NewNop(), params)
		assert.Nil(t, generated)
		assert.ErrorIs(t, err, roster.ErrInvalidEdit)
		assert.Contains(t, err.Error(), "failed to apply manual edits")
	})
}

func TestManualEdits(t *testing.T) {
	edits := manualEdits(
		[]roster.DayConstraint{{Name: "A", Days: []int{2, 9}}},
		[]roster.DayConstraint{{Name: "B", Days: []int{2}}, {Name: "C", Days: []int{}}},
	)

	assert.Equal(t, []roster.Edit{
		{Name: "B", Day: 2, Remove: true},
		{Name: "A", Day: 2},
		{Name: "A", Day: 9},
	}, edits)
}

func TestGenerateRoster_NoQuotas(t *testing.T) {
	params := GenerateParams{Year: 2025, Month: 5, QuotasText: "# nothing here\n"}

	generated, err := GenerateRoster(context.Background(), testConfig(), zap.NewNop(), params)
	assert.Nil(t, generated)
	assert.ErrorIs(t, err, roster.ErrInvalidInput)
}

func TestGenerateRoster_DuplicateNames(t *testing.T) {
	params := GenerateParams{Year: 2025, Month: 5, QuotasText: "A: 5\nA: 3"}

	generated, err := GenerateRoster(context.Background(), testConfig(), zap.NewNop(), params)
	assert.Nil(t, generated)
	assert.ErrorIs(t, err, roster.ErrInvalidInput)
	assert.Contains(t, err.Error(), "failed to generate roster")
}

func TestGenerateRoster_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	params := GenerateParams{Year: 2026, Month: 1, QuotasText: februaryQuotas}
	generated, err := GenerateRoster(ctx, testConfig(), zap.NewNop(), params)
	assert.Nil(t, generated)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCapacityWarning(t *testing.T) {
	quotas := []roster.StaffQuota{{Name: "A", Quota: 10}, {Name: "B", Quota: 20}}

	assert.Empty(t, capacityWarning(quotas, 1, 30))
	assert.Empty(t, capacityWarning(quotas, 1, 28))
	assert.Equal(t, "Warning: total quota (30) is less than required slots (31).", capacityWarning(quotas, 1, 31))
}
