package roster

import (
	"fmt"
	"time"
)

const maxWeekendShifts = 2

// WeekendLimitCriterion caps the number of Saturday and Sunday shifts per person.
// It has no cost component.
type WeekendLimitCriterion struct{}

// NewWeekendLimitCriterion creates a new WeekendLimitCriterion
func NewWeekendLimitCriterion() *WeekendLimitCriterion {
	return &WeekendLimitCriterion{}
}

func (c *WeekendLimitCriterion) Name() string {
	return "WeekendLimit"
}

func (c *WeekendLimitCriterion) Violations(state *State, dayIdx int, name string) int {
	if !state.Days[dayIdx].IsWeekend {
		return 0
	}
	counts := state.WeekdayCounts[name]
	if counts[time.Saturday]+counts[time.Sunday] >= maxWeekendShifts {
		return 1
	}
	return 0
}

func (c *WeekendLimitCriterion) Cost(state *State, dayIdx int, name string) int {
	return 0
}

func (c *WeekendLimitCriterion) ValidateSchedule(schedule Schedule, in *Input) []ScheduleViolation {
	var violations []ScheduleViolation

	weekends := make(map[string]int)
	for _, day := range schedule {
		if !day.IsWeekend {
			continue
		}
		for _, name := range day.Staff {
			weekends[name]++
			if weekends[name] > maxWeekendShifts {
				violations = append(violations, ScheduleViolation{
					DayOfMonth:    day.DayOfMonth,
					Date:          day.Date,
					CriterionName: c.Name(),
					Description:   fmt.Sprintf("%s works %d weekend days (max %d)", name, weekends[name], maxWeekendShifts),
				})
			}
		}
	}

	return violations
}
