package roster

import "slices"

// requestsByDay groups requesters by day of month, keeping first-seen order.
// A person asking for the same day twice is listed once.
func requestsByDay(requests []DayConstraint) map[int][]string {
	byDay := make(map[int][]string)
	for _, req := range requests {
		for _, d := range req.Days {
			if slices.Contains(byDay[d], req.Name) {
				continue
			}
			byDay[d] = append(byDay[d], req.Name)
		}
	}
	return byDay
}

// allocateRequests seeds the schedule with requested shifts.
// Requesters of each day are shuffled, then each request is committed unless the day is
// full, the person is on leave, or their quota is used up. Rejections are logged.
// Committed requests are never undone by later phases.
func allocateRequests(state *State, requests []DayConstraint) {
	byDay := requestsByDay(requests)

	for i := range state.Days {
		day := &state.Days[i]

		requesters := slices.Clone(byDay[day.DayOfMonth])
		if len(requesters) == 0 {
			continue
		}
		Shuffle(state.rng, requesters)

		for _, name := range requesters {
			if len(day.Staff) >= state.PerDay {
				state.logf("Warning: Day %d full. Request for %s ignored.", day.DayOfMonth, name)
				continue
			}

			if state.OnLeave(name, day.DayOfMonth) {
				state.logf("Warning: %s requested Day %d but is on leave.", name, day.DayOfMonth)
				continue
			}

			// People without a quota have nothing remaining
			if state.Remaining[name] <= 0 {
				state.logf("Warning: %s quota exceeded for request Day %d.", name, day.DayOfMonth)
				continue
			}

			state.assign(i, name)
		}
	}
}
