package roster

import "slices"

type candidate struct {
	name  string
	score Score
}

// fillDay tops up the day at dayIdx to the required headcount.
// Every quota holder not already on the day is scored, then the best eligible candidates
// are committed in order. Returns the number of slots left empty.
func fillDay(state *State, dayIdx int, criteria []Criterion) int {
	day := &state.Days[dayIdx]

	needed := state.PerDay - len(day.Staff)
	if needed <= 0 {
		return 0
	}

	candidates := make([]candidate, 0, len(state.Names))
	for _, name := range state.Names {
		if slices.Contains(day.Staff, name) {
			continue
		}
		candidates = append(candidates, candidate{
			name:  name,
			score: ScoreCandidate(state, dayIdx, name, criteria),
		})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.score.Compare(b.score)
	})

	for _, c := range candidates {
		if needed == 0 {
			break
		}
		// Sorted by violations first, so nobody after this is eligible either
		if !c.score.Eligible() {
			break
		}
		state.assign(dayIdx, c.name)
		needed--
	}

	return needed
}
