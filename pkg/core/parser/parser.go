package parser

import (
	"strconv"
	"strings"

	"github.com/jakechorley/duty-roster/pkg/core/roster"
)

// SampleQuotas shows the quota format, one "Name: N" per line
const SampleQuotas = `# Name: number of duty days
Alice Smith: 5
Bob Jones: 5
Carol White: 5
Dan Brown: 5
Erin Green: 5
Frank Black: 5`

// SampleLeaves shows the leave format, one "Name: d1, d2" per line
const SampleLeaves = `# Name: 1, 2, 15
Alice Smith: 10, 11`

// SampleRequests shows the request format, one "Name: d1, d2" per line
const SampleRequests = `# Name: 5, 20
Carol White: 5`

// ParseQuotas reads "Name: N" lines into quotas.
// Blank lines, "#" comments and lines without a colon are skipped, as are lines whose
// value does not start with a non-negative integer.
func ParseQuotas(text string) []roster.StaffQuota {
	var quotas []roster.StaffQuota

	for _, line := range strings.Split(text, "\n") {
		name, value, ok := splitLine(line)
		if !ok {
			continue
		}

		quota, ok := leadingInt(value)
		if !ok || quota < 0 {
			continue
		}

		quotas = append(quotas, roster.StaffQuota{Name: name, Quota: quota})
	}

	return quotas
}

// ParseDays reads "Name: d1, d2, ..." lines into day constraints.
// Tokens that are not numbers or fall outside [1, daysInMonth] are dropped. A named line
// with no valid days still produces a constraint with no days.
func ParseDays(text string, daysInMonth int) []roster.DayConstraint {
	var constraints []roster.DayConstraint

	for _, line := range strings.Split(text, "\n") {
		name, value, ok := splitLine(line)
		if !ok {
			continue
		}

		days := []int{}
		for _, token := range strings.Split(value, ",") {
			day, ok := leadingInt(strings.TrimSpace(token))
			if !ok || day < 1 || day > daysInMonth {
				continue
			}
			days = append(days, day)
		}

		constraints = append(constraints, roster.DayConstraint{Name: name, Days: days})
	}

	return constraints
}

// splitLine returns the trimmed name and the text between the first and second colon
func splitLine(line string) (name, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) < 2 {
		return "", "", false
	}

	name = strings.TrimSpace(parts[0])
	if name == "" {
		return "", "", false
	}

	return name, strings.TrimSpace(parts[1]), true
}

// leadingInt parses the integer at the start of s, ignoring anything after it ("5 days" is 5)
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
