package roster

// ScheduleViolation describes a rule broken by a finished schedule
type ScheduleViolation struct {
	DayOfMonth    int
	Date          string
	CriterionName string
	Description   string
}

// Criterion is one rule of the slot filler.
// Hard rules report violations, soft rules report a cost. A criterion may do both.
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// Violations counts the hard constraints broken by assigning name to the day at dayIdx.
	// Any candidate with a violation is never assigned.
	Violations(state *State, dayIdx int, name string) int

	// Cost is the soft penalty of the assignment. Lower is better and it may be negative.
	Cost(state *State, dayIdx int, name string) int

	// ValidateSchedule checks a finished schedule against this criterion.
	// Returns an empty slice when the schedule satisfies it.
	ValidateSchedule(schedule Schedule, in *Input) []ScheduleViolation
}

// Rules switches optional behaviour of the standard criteria
type Rules struct {
	// AllowAlternateDays drops the penalty for working every other day
	AllowAlternateDays bool
}

// DefaultCriteria returns the standard duty rules
func DefaultCriteria() []Criterion {
	return CriteriaFor(Rules{})
}

// CriteriaFor returns the standard duty rules adjusted by rules
func CriteriaFor(rules Rules) []Criterion {
	rest := NewRestCriterion()
	rest.AllowAlternateDays = rules.AllowAlternateDays

	return []Criterion{
		NewQuotaCriterion(),
		NewLeaveCriterion(),
		rest,
		NewWeekdayCapCriterion(),
		NewWeekendLimitCriterion(),
		NewJitterCriterion(),
	}
}
