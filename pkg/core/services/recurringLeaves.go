package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/core/roster"
)

// ExpandRecurringLeaves turns the configured recurring leaves into leave records for one month.
// month is zero-based. Rules without a DTSTART are anchored on the first day of the month.
// A rule with no occurrence in the month is dropped.
func ExpandRecurringLeaves(leaves []config.RecurringLeave, year, month int) ([]roster.DayConstraint, error) {
	monthStart := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	result := make([]roster.DayConstraint, 0, len(leaves))
	for i, leave := range leaves {
		opt, err := rrule.StrToROption(leave.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for recurring leave %d: %w", i, err)
		}

		if opt.Dtstart.IsZero() {
			opt.Dtstart = monthStart
		}

		rule, err := rrule.NewRRule(*opt)
		if err != nil {
			return nil, fmt.Errorf("failed to build rrule for recurring leave %d: %w", i, err)
		}

		var days []int
		for _, occurrence := range rule.Between(monthStart, monthEnd, true) {
			days = append(days, occurrence.UTC().Day())
		}
		if len(days) == 0 {
			continue
		}

		result = append(result, roster.DayConstraint{Name: leave.Name, Days: days})
	}

	return result, nil
}
