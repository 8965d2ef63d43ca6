package roster

import "fmt"

// LeaveCriterion keeps people off the days they are on leave.
// It has no cost component.
type LeaveCriterion struct{}

// NewLeaveCriterion creates a new LeaveCriterion
func NewLeaveCriterion() *LeaveCriterion {
	return &LeaveCriterion{}
}

func (c *LeaveCriterion) Name() string {
	return "Leave"
}

func (c *LeaveCriterion) Violations(state *State, dayIdx int, name string) int {
	if state.OnLeave(name, state.Days[dayIdx].DayOfMonth) {
		return 1
	}
	return 0
}

func (c *LeaveCriterion) Cost(state *State, dayIdx int, name string) int {
	return 0
}

func (c *LeaveCriterion) ValidateSchedule(schedule Schedule, in *Input) []ScheduleViolation {
	var violations []ScheduleViolation

	leaves := indexDays(in.Leaves)
	for _, day := range schedule {
		for _, name := range day.Staff {
			if leaves[name][day.DayOfMonth] {
				violations = append(violations, ScheduleViolation{
					DayOfMonth:    day.DayOfMonth,
					Date:          day.Date,
					CriterionName: c.Name(),
					Description:   fmt.Sprintf("%s is assigned while on leave", name),
				})
			}
		}
	}

	return violations
}
