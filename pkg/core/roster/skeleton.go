package roster

import "time"

const dateLayout = "2006-01-02"

// DaysInMonth returns the number of days in the given zero-based month
func DaysInMonth(year, month int) int {
	// Day 0 of the following month is the last day of this one
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildSkeleton creates one empty ScheduleDay per calendar day of the month.
// Weekdays are computed in UTC so the date never shifts with the local timezone.
func BuildSkeleton(year, month int) Schedule {
	daysInMonth := DaysInMonth(year, month)
	schedule := make(Schedule, 0, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
		dayOfWeek := int(date.Weekday())

		schedule = append(schedule, ScheduleDay{
			Date:       date.Format(dateLayout),
			DayOfMonth: day,
			DayOfWeek:  dayOfWeek,
			Staff:      []string{},
			IsWeekend:  isWeekendDay(dayOfWeek),
		})
	}

	return schedule
}

func isWeekendDay(dayOfWeek int) bool {
	return dayOfWeek == int(time.Sunday) || dayOfWeek == int(time.Saturday)
}

// isCriticalDay reports whether the weekday is capped at one shift per person (Thu, Fri, Sat, Sun)
func isCriticalDay(dayOfWeek int) bool {
	switch time.Weekday(dayOfWeek) {
	case time.Thursday, time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return false
}
