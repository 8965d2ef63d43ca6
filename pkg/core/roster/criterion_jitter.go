package roster

const maxJitter = 50

// JitterCriterion adds a small random cost so that ties break differently between trials.
// It never rejects a candidate and has nothing to validate.
type JitterCriterion struct{}

// NewJitterCriterion creates a new JitterCriterion
func NewJitterCriterion() *JitterCriterion {
	return &JitterCriterion{}
}

func (c *JitterCriterion) Name() string {
	return "Jitter"
}

func (c *JitterCriterion) Violations(state *State, dayIdx int, name string) int {
	return 0
}

func (c *JitterCriterion) Cost(state *State, dayIdx int, name string) int {
	return state.Rand().IntN(maxJitter + 1)
}

func (c *JitterCriterion) ValidateSchedule(schedule Schedule, in *Input) []ScheduleViolation {
	return nil
}
