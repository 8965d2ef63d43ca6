package roster

import "fmt"

const remainingQuotaReward = 100

// QuotaCriterion enforces each person's monthly quota.
//
// Violations:
//   - The person has no remaining quota
//
// Cost:
//   - Rewards people with more remaining quota so their shifts are spread through
//     the month rather than dumped at the end
type QuotaCriterion struct{}

// NewQuotaCriterion creates a new QuotaCriterion
func NewQuotaCriterion() *QuotaCriterion {
	return &QuotaCriterion{}
}

func (c *QuotaCriterion) Name() string {
	return "Quota"
}

func (c *QuotaCriterion) Violations(state *State, dayIdx int, name string) int {
	if state.Remaining[name] <= 0 {
		return 1
	}
	return 0
}

func (c *QuotaCriterion) Cost(state *State, dayIdx int, name string) int {
	return -remainingQuotaReward * state.Remaining[name]
}

func (c *QuotaCriterion) ValidateSchedule(schedule Schedule, in *Input) []ScheduleViolation {
	var violations []ScheduleViolation

	quotas := make(map[string]int, len(in.Quotas))
	for _, q := range in.Quotas {
		quotas[q.Name] = q.Quota
	}

	assigned := make(map[string]int)
	for _, day := range schedule {
		for _, name := range day.Staff {
			assigned[name]++
			if assigned[name] > quotas[name] {
				violations = append(violations, ScheduleViolation{
					DayOfMonth:    day.DayOfMonth,
					Date:          day.Date,
					CriterionName: c.Name(),
					Description:   fmt.Sprintf("%s exceeds quota of %d", name, quotas[name]),
				})
			}
		}
	}

	return violations
}
