package roster

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidEdit is returned when a manual edit cannot be applied to a schedule
var ErrInvalidEdit = errors.New("invalid edit")

// Edit puts a person on, or takes them off, one day of a finished schedule
type Edit struct {
	Name string

	// Day is the day of the month
	Day int

	Remove bool
}

func (e Edit) String() string {
	if e.Remove {
		return fmt.Sprintf("%s removed from Day %d", e.Name, e.Day)
	}
	return fmt.Sprintf("%s assigned to Day %d", e.Name, e.Day)
}

// ApplyEdits returns a copy of result with the edits applied to its schedule.
// Removals run before additions, so a person can be swapped in on a full day.
// Warnings, unfilled slots and statistics are recalculated for the edited schedule;
// result itself is left untouched.
func ApplyEdits(result *GenerationResult, in Input, edits []Edit) (*GenerationResult, error) {
	schedule := cloneSchedule(result.Schedule)

	ordered := slices.Clone(edits)
	slices.SortStableFunc(ordered, func(a, b Edit) int {
		switch {
		case a.Remove == b.Remove:
			return 0
		case a.Remove:
			return -1
		default:
			return 1
		}
	})

	for _, edit := range ordered {
		if err := applyEdit(schedule, in, edit); err != nil {
			return nil, err
		}
	}

	edited := *result
	edited.Schedule = schedule
	edited.UnfilledSlots = 0
	for i := range schedule {
		day := &schedule[i]
		day.Warning = ""
		if missing := in.PerDay - len(day.Staff); missing > 0 {
			day.Warning = UnderstaffedWarning
			edited.UnfilledSlots += missing
		}
	}
	edited.Success = edited.UnfilledSlots == 0
	edited.Stats = Aggregate(schedule, in.Quotas)

	edited.Logs = slices.Clone(result.Logs)
	for _, edit := range ordered {
		edited.Logs = append(edited.Logs, fmt.Sprintf("Edit: %s.", edit))
	}

	return &edited, nil
}

func applyEdit(schedule Schedule, in Input, edit Edit) error {
	if edit.Day < 1 || edit.Day > len(schedule) {
		return fmt.Errorf("%w: day %d is outside the month", ErrInvalidEdit, edit.Day)
	}

	day := &schedule[edit.Day-1]
	idx := slices.Index(day.Staff, edit.Name)

	if edit.Remove {
		if idx < 0 {
			return fmt.Errorf("%w: %s is not on day %d", ErrInvalidEdit, edit.Name, edit.Day)
		}
		day.Staff = slices.Delete(day.Staff, idx, idx+1)
		return nil
	}

	if !slices.ContainsFunc(in.Quotas, func(q StaffQuota) bool { return q.Name == edit.Name }) {
		return fmt.Errorf("%w: %s has no quota", ErrInvalidEdit, edit.Name)
	}
	if idx >= 0 {
		return fmt.Errorf("%w: %s is already on day %d", ErrInvalidEdit, edit.Name, edit.Day)
	}
	if len(day.Staff) >= in.PerDay {
		return fmt.Errorf("%w: day %d already has %d staff", ErrInvalidEdit, edit.Day, len(day.Staff))
	}

	day.Staff = append(day.Staff, edit.Name)
	return nil
}

func cloneSchedule(schedule Schedule) Schedule {
	cloned := slices.Clone(schedule)
	for i := range cloned {
		cloned[i].Staff = slices.Clone(schedule[i].Staff)
	}
	return cloned
}
