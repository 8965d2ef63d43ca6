package roster

import (
	"fmt"
	"time"
)

const weekdayRepeatCost = 5_000_000

// WeekdayCapCriterion spreads each person's shifts across the days of the week.
//
// Violations:
//   - The day is a Thursday, Friday, Saturday or Sunday and the person already
//     works one of that weekday this month
//
// Cost:
//   - A heavy penalty per shift the person already has on this weekday
type WeekdayCapCriterion struct{}

// NewWeekdayCapCriterion creates a new WeekdayCapCriterion
func NewWeekdayCapCriterion() *WeekdayCapCriterion {
	return &WeekdayCapCriterion{}
}

func (c *WeekdayCapCriterion) Name() string {
	return "WeekdayCap"
}

func (c *WeekdayCapCriterion) Violations(state *State, dayIdx int, name string) int {
	dow := state.Days[dayIdx].DayOfWeek
	if isCriticalDay(dow) && state.WeekdayCounts[name][dow] >= 1 {
		return 1
	}
	return 0
}

func (c *WeekdayCapCriterion) Cost(state *State, dayIdx int, name string) int {
	dow := state.Days[dayIdx].DayOfWeek
	return weekdayRepeatCost * state.WeekdayCounts[name][dow]
}

func (c *WeekdayCapCriterion) ValidateSchedule(schedule Schedule, in *Input) []ScheduleViolation {
	var violations []ScheduleViolation

	counts := make(map[string][7]int)
	for _, day := range schedule {
		for _, name := range day.Staff {
			personCounts := counts[name]
			personCounts[day.DayOfWeek]++
			counts[name] = personCounts

			if isCriticalDay(day.DayOfWeek) && personCounts[day.DayOfWeek] > 1 {
				violations = append(violations, ScheduleViolation{
					DayOfMonth:    day.DayOfMonth,
					Date:          day.Date,
					CriterionName: c.Name(),
					Description: fmt.Sprintf("%s works %d %ss",
						name, personCounts[day.DayOfWeek], time.Weekday(day.DayOfWeek)),
				})
			}
		}
	}

	return violations
}
