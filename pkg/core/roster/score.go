package roster

import "cmp"

// Score ranks a candidate for a slot. Scores compare lexicographically:
// fewer hard-constraint violations always wins, then lower cost.
type Score struct {
	Violations int
	Cost       int
}

// Compare returns -1, 0 or +1 as s ranks before, equal to or after other
func (s Score) Compare(other Score) int {
	return cmp.Or(
		cmp.Compare(s.Violations, other.Violations),
		cmp.Compare(s.Cost, other.Cost),
	)
}

// Eligible reports whether no hard constraint is broken
func (s Score) Eligible() bool {
	return s.Violations == 0
}

// ScoreCandidate sums every criterion's verdict for placing name on the day at dayIdx
func ScoreCandidate(state *State, dayIdx int, name string, criteria []Criterion) Score {
	var score Score
	for _, criterion := range criteria {
		score.Violations += criterion.Violations(state, dayIdx, name)
		score.Cost += criterion.Cost(state, dayIdx, name)
	}
	return score
}
