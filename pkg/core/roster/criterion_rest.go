package roster

import "fmt"

const alternateDayCost = 500

// RestCriterion prevents back-to-back duty days.
//
// Violations:
//   - The person worked the previous day
//   - The person is already assigned to the next day. Days are filled out of order,
//     so the next day may already be populated.
//
// Cost:
//   - A small penalty for working exactly two days earlier, which discourages
//     every-other-day patterns. Dropped when AllowAlternateDays is set.
type RestCriterion struct {
	AllowAlternateDays bool
}

// NewRestCriterion creates a new RestCriterion
func NewRestCriterion() *RestCriterion {
	return &RestCriterion{}
}

func (c *RestCriterion) Name() string {
	return "Rest"
}

func (c *RestCriterion) Violations(state *State, dayIdx int, name string) int {
	violations := 0
	if state.Works(name, dayIdx-1) {
		violations++
	}
	if state.Works(name, dayIdx+1) {
		violations++
	}
	return violations
}

func (c *RestCriterion) Cost(state *State, dayIdx int, name string) int {
	if !c.AllowAlternateDays && state.Works(name, dayIdx-2) {
		return alternateDayCost
	}
	return 0
}

func (c *RestCriterion) ValidateSchedule(schedule Schedule, in *Input) []ScheduleViolation {
	var violations []ScheduleViolation

	for i := 1; i < len(schedule); i++ {
		prev := schedule[i-1]
		day := schedule[i]
		for _, name := range day.Staff {
			for _, prevName := range prev.Staff {
				if name != prevName {
					continue
				}
				violations = append(violations, ScheduleViolation{
					DayOfMonth:    day.DayOfMonth,
					Date:          day.Date,
					CriterionName: c.Name(),
					Description:   fmt.Sprintf("%s works consecutive days %d and %d", name, prev.DayOfMonth, day.DayOfMonth),
				})
			}
		}
	}

	return violations
}
