package roster

import "slices"

// Aggregate computes per-person totals from a finished schedule, in quota order
func Aggregate(schedule Schedule, quotas []StaffQuota) []Statistics {
	stats := make([]Statistics, 0, len(quotas))

	for _, q := range quotas {
		stat := Statistics{
			Name:   q.Name,
			Target: q.Quota,
		}

		for _, day := range schedule {
			if !slices.Contains(day.Staff, q.Name) {
				continue
			}
			stat.Assigned++
			if day.IsWeekend {
				stat.WeekendShifts++
			}
		}

		stats = append(stats, stat)
	}

	return stats
}
