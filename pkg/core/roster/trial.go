package roster

import "math/rand/v2"

// trialResult is the output of one randomized construction
type trialResult struct {
	index    int
	schedule Schedule
	logs     []string
	unfilled int
}

// runTrial builds one complete roster.
// The trial draws from its own PCG source seeded by (seed, index), so its result depends
// only on the input, the seed and its index.
func runTrial(in *Input, criteria []Criterion, seed uint64, index int) trialResult {
	rng := rand.New(rand.NewPCG(seed, uint64(index)))
	state := NewState(in, rng)

	// Requests first; they are never undone
	allocateRequests(state, in.Requests)

	var critical, standard []int
	for i, day := range state.Days {
		if isCriticalDay(day.DayOfWeek) {
			critical = append(critical, i)
		} else {
			standard = append(standard, i)
		}
	}

	unfilled := 0

	// Thu/Fri/Sat/Sun are the hardest to staff, so they get first pick.
	// Shuffling the order lets each trial explore a different distribution.
	Shuffle(rng, critical)
	for _, idx := range critical {
		unfilled += fillDay(state, idx, criteria)
	}

	Shuffle(rng, standard)
	for _, idx := range standard {
		unfilled += fillDay(state, idx, criteria)
	}

	for i := range state.Days {
		day := &state.Days[i]
		if len(day.Staff) < state.PerDay {
			day.Warning = UnderstaffedWarning
			state.logf("Warning: Day %d understaffed (%d of %d filled).", day.DayOfMonth, len(day.Staff), state.PerDay)
		}
	}

	return trialResult{
		index:    index,
		schedule: state.Days,
		logs:     state.Logs(),
		unfilled: unfilled,
	}
}

// better reports whether r should replace best: fewer unfilled slots, then lower index
func (r trialResult) better(best *trialResult) bool {
	if best == nil {
		return true
	}
	if r.unfilled != best.unfilled {
		return r.unfilled < best.unfilled
	}
	return r.index < best.index
}
