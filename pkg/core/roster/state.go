package roster

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// State is the working state of a single trial.
// Each trial owns its State and random source, so trials never share memory.
type State struct {
	// Days is the schedule under construction
	Days Schedule

	// PerDay is the required headcount for every day
	PerDay int

	// Names lists quota holders in input order
	Names []string

	// Remaining is each person's unused quota. It never goes below zero.
	Remaining map[string]int

	// WeekdayCounts holds per-weekday assignment counts, indexed Sunday (0) to Saturday (6)
	WeekdayCounts map[string][7]int

	leaves map[string]map[int]bool
	rng    *rand.Rand
	logs   []string
}

// NewState builds the initial trial state for the input.
// Leave records sharing a name are merged.
func NewState(in *Input, rng *rand.Rand) *State {
	state := &State{
		Days:          BuildSkeleton(in.Year, in.Month),
		PerDay:        in.PerDay,
		Names:         make([]string, 0, len(in.Quotas)),
		Remaining:     make(map[string]int, len(in.Quotas)),
		WeekdayCounts: make(map[string][7]int, len(in.Quotas)),
		leaves:        indexDays(in.Leaves),
		rng:           rng,
	}

	for _, q := range in.Quotas {
		state.Names = append(state.Names, q.Name)
		state.Remaining[q.Name] = q.Quota
		state.WeekdayCounts[q.Name] = [7]int{}
	}

	return state
}

// Rand returns the trial's random source
func (s *State) Rand() *rand.Rand {
	return s.rng
}

// Logs returns the warnings recorded during the trial
func (s *State) Logs() []string {
	return s.logs
}

// OnLeave reports whether the person is on leave on the given day of the month
func (s *State) OnLeave(name string, dayOfMonth int) bool {
	return s.leaves[name][dayOfMonth]
}

// Works reports whether the person is assigned to the day at dayIdx.
// Indices outside the month are never worked.
func (s *State) Works(name string, dayIdx int) bool {
	if dayIdx < 0 || dayIdx >= len(s.Days) {
		return false
	}
	return slices.Contains(s.Days[dayIdx].Staff, name)
}

// assign commits a person to a day and updates the trackers
func (s *State) assign(dayIdx int, name string) {
	day := &s.Days[dayIdx]
	day.Staff = append(day.Staff, name)
	s.Remaining[name]--

	counts := s.WeekdayCounts[name]
	counts[day.DayOfWeek]++
	s.WeekdayCounts[name] = counts
}

func (s *State) logf(format string, args ...any) {
	s.logs = append(s.logs, fmt.Sprintf(format, args...))
}

// indexDays merges day constraints into a name to day-of-month set
func indexDays(constraints []DayConstraint) map[string]map[int]bool {
	index := make(map[string]map[int]bool, len(constraints))
	for _, c := range constraints {
		days, ok := index[c.Name]
		if !ok {
			days = make(map[int]bool, len(c.Days))
			index[c.Name] = days
		}
		for _, d := range c.Days {
			days[d] = true
		}
	}
	return index
}
