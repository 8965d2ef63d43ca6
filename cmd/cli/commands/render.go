package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jakechorley/duty-roster/pkg/core/roster"
	"github.com/jakechorley/duty-roster/pkg/core/services"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	weekendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	plainStyle   = lipgloss.NewStyle()
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5C5C5C"))
)

// renderRoster prints the roster table, a summary, statistics, request warnings and any
// rule violations found in the schedule
func renderRoster(w io.Writer, generated *services.GeneratedRoster) {
	result := generated.Result

	rows := services.RosterRows(result.Schedule, generated.Input.PerDay)
	fmt.Fprintln(w, renderTable(rows, func(i int) lipgloss.Style {
		day := result.Schedule[i]
		switch {
		case day.Warning != "":
			return warningStyle
		case day.IsWeekend:
			return weekendStyle
		default:
			return plainStyle
		}
	}))

	fmt.Fprintln(w, summaryLine(result))
	fmt.Fprintln(w)

	fmt.Fprintln(w, renderTable(services.StatsRows(result.Stats), func(i int) lipgloss.Style {
		if result.Stats[i].Assigned < result.Stats[i].Target {
			return warningStyle
		}
		return plainStyle
	}))

	if len(result.Logs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headerStyle.Render("Logs"))
		for _, line := range result.Logs {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	if len(generated.Violations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("%d rule violations", len(generated.Violations))))
		for _, v := range generated.Violations {
			fmt.Fprintf(w, "  [%s] %s: %s\n", v.CriterionName, v.Date, v.Description)
		}
	}
}

// summaryLine reports whether every slot was filled and how to replay the run
func summaryLine(result *roster.GenerationResult) string {
	if result.Success {
		return successStyle.Render(fmt.Sprintf("All slots filled (trial %d of %d, seed %d)",
			result.Trial+1, result.TrialsRun, result.Seed))
	}
	return warningStyle.Render(fmt.Sprintf("%d slots unfilled (best of %d trials, seed %d)",
		result.UnfilledSlots, result.TrialsRun, result.Seed))
}

// renderTable draws rows as a bordered table. rows[0] is the header;
// rowStyle is called with the index of each data row.
func renderTable(rows [][]string, rowStyle func(i int) lipgloss.Style) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(rows[0]...).
		Rows(rows[1:]...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			// Data rows are numbered from just after the header
			return rowStyle(row - table.HeaderRow - 1).Padding(0, 1)
		})

	return t.String()
}
