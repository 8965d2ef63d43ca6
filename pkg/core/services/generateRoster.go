package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/core/parser"
	"github.com/jakechorley/duty-roster/pkg/core/roster"
)

// GenerateParams is the user input for one month's roster
type GenerateParams struct {
	Year int

	// Month is zero-based (0 = January)
	Month int

	// PerDay overrides the configured headcount when positive
	PerDay int

	QuotasText   string
	LeavesText   string
	RequestsText string

	// Seed replays a previous search when set
	Seed *uint64

	// AllowAlternateDays lifts the every-other-day penalty for this run.
	// It is also on when the config sets allowAlternateDays.
	AllowAlternateDays bool

	// AssignText and UnassignText are manual edits in the "Name: d1, d2" format,
	// applied to the generated schedule
	AssignText   string
	UnassignText string
}

// GeneratedRoster is a generated month together with the input it was built from
type GeneratedRoster struct {
	Input      roster.Input
	Rules      roster.Rules
	Result     *roster.GenerationResult
	Violations []roster.ScheduleViolation
}

// GenerateRoster parses the user input, adds the configured recurring leaves and runs the
// roster engine with the configured search options.
// The run is bounded by the configured timeout; the best trial found before it is returned.
func GenerateRoster(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	params GenerateParams,
) (*GeneratedRoster, error) {
	logger.Debug("Starting generateRoster",
		zap.Int("year", params.Year),
		zap.Int("month", params.Month),
		zap.Int("per_day", params.PerDay))

	perDay := params.PerDay
	if perDay <= 0 {
		perDay = cfg.PerDay
	}

	// Step 1: Parse the constraint texts
	daysInMonth := roster.DaysInMonth(params.Year, params.Month)
	quotas := parser.ParseQuotas(params.QuotasText)
	leaves := parser.ParseDays(params.LeavesText, daysInMonth)
	requests := parser.ParseDays(params.RequestsText, daysInMonth)

	logger.Debug("Parsed input",
		zap.Int("quotas", len(quotas)),
		zap.Int("leaves", len(leaves)),
		zap.Int("requests", len(requests)))

	if len(quotas) == 0 {
		return nil, fmt.Errorf("%w: no staff quotas found", roster.ErrInvalidInput)
	}

	// Step 2: Add recurring leaves from config
	recurring, err := ExpandRecurringLeaves(cfg.RecurringLeaves, params.Year, params.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to expand recurring leaves: %w", err)
	}
	leaves = append(leaves, recurring...)
	logger.Debug("Expanded recurring leaves", zap.Int("count", len(recurring)))

	in := roster.Input{
		Year:     params.Year,
		Month:    params.Month,
		PerDay:   perDay,
		Quotas:   quotas,
		Leaves:   leaves,
		Requests: requests,
	}

	// Step 3: Run the engine
	rules := roster.Rules{
		AllowAlternateDays: cfg.AllowAlternateDays || params.AllowAlternateDays,
	}
	criteria := roster.CriteriaFor(rules)

	runCtx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	result, err := roster.Generate(runCtx, in, roster.Options{
		MaxTrials: cfg.MaxTrials,
		Workers:   cfg.Workers,
		Seed:      params.Seed,
		Criteria:  criteria,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate roster: %w", err)
	}

	// Step 4: Apply manual edits
	edits := manualEdits(
		parser.ParseDays(params.AssignText, daysInMonth),
		parser.ParseDays(params.UnassignText, daysInMonth),
	)
	if len(edits) > 0 {
		result, err = roster.ApplyEdits(result, in, edits)
		if err != nil {
			return nil, fmt.Errorf("failed to apply manual edits: %w", err)
		}
		logger.Debug("Applied manual edits", zap.Int("edits", len(edits)))
	}

	if warning := capacityWarning(quotas, perDay, daysInMonth); warning != "" {
		result.Logs = append([]string{warning}, result.Logs...)
	}

	// Step 5: Check the final schedule
	violations := roster.ValidateSchedule(result.Schedule, in, criteria)

	logger.Debug("Generated roster",
		zap.Bool("success", result.Success),
		zap.Int("unfilled_slots", result.UnfilledSlots),
		zap.Int("violations", len(violations)),
		zap.Uint64("seed", result.Seed))

	return &GeneratedRoster{
		Input:      in,
		Rules:      rules,
		Result:     result,
		Violations: violations,
	}, nil
}

// manualEdits flattens assign and unassign records into one edit per day
func manualEdits(assign, unassign []roster.DayConstraint) []roster.Edit {
	var edits []roster.Edit
	for _, c := range unassign {
		for _, day := range c.Days {
			edits = append(edits, roster.Edit{Name: c.Name, Day: day, Remove: true})
		}
	}
	for _, c := range assign {
		for _, day := range c.Days {
			edits = append(edits, roster.Edit{Name: c.Name, Day: day})
		}
	}
	return edits
}

// capacityWarning reports when the quotas cannot cover every slot of the month
func capacityWarning(quotas []roster.StaffQuota, perDay, daysInMonth int) string {
	total := 0
	for _, q := range quotas {
		total += q.Quota
	}

	required := perDay * daysInMonth
	if total >= required {
		return ""
	}
	return fmt.Sprintf("Warning: total quota (%d) is less than required slots (%d).", total, required)
}
