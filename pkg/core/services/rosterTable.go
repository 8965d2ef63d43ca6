package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jakechorley/duty-roster/pkg/core/roster"
)

// RosterRows lays the schedule out as a header and one row per day.
// Every row has a column per duty slot; unfilled slots are empty.
func RosterRows(schedule roster.Schedule, perDay int) [][]string {
	header := []string{"Date", "Day"}
	for i := 1; i <= perDay; i++ {
		header = append(header, fmt.Sprintf("Duty %d", i))
	}
	header = append(header, "Warning")

	rows := make([][]string, 0, len(schedule)+1)
	rows = append(rows, header)

	for _, day := range schedule {
		row := []string{day.Date, time.Weekday(day.DayOfWeek).String()}
		for i := 0; i < perDay; i++ {
			if i < len(day.Staff) {
				row = append(row, day.Staff[i])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, day.Warning)
		rows = append(rows, row)
	}

	return rows
}

// StatsRows lays the per-person statistics out as a header and one row per person
func StatsRows(stats []roster.Statistics) [][]string {
	rows := make([][]string, 0, len(stats)+1)
	rows = append(rows, []string{"Name", "Target", "Assigned", "Weekend Shifts"})

	for _, s := range stats {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.Target),
			strconv.Itoa(s.Assigned),
			strconv.Itoa(s.WeekendShifts),
		})
	}

	return rows
}

// RosterTable is the roster followed by a blank row and the statistics
func RosterTable(generated *GeneratedRoster) [][]string {
	rows := RosterRows(generated.Result.Schedule, generated.Input.PerDay)
	rows = append(rows, []string{})
	return append(rows, StatsRows(generated.Result.Stats)...)
}
