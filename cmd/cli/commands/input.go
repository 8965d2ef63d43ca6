package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/duty-roster/pkg/core/parser"
	"github.com/jakechorley/duty-roster/pkg/core/services"
)

// inputFlags are the flags describing a month's roster input
type inputFlags struct {
	year         int
	month        int
	perDay       int
	quotasFile   string
	leavesFile   string
	requestsFile string
	sample       bool

	// Applied on top of a draft as well as file input
	allowAlternateDays bool
	assign             []string
	unassign           []string
}

// register adds the input flags to cmd. Year and month default to next month.
func (f *inputFlags) register(cmd *cobra.Command, now time.Time) {
	next := now.AddDate(0, 1, 1-now.Day())

	cmd.Flags().IntVar(&f.year, "year", next.Year(), "Roster year")
	cmd.Flags().IntVar(&f.month, "month", int(next.Month()), "Roster month (1-12)")
	cmd.Flags().IntVar(&f.perDay, "per-day", 0, "Staff required per day (defaults to config perDay)")
	cmd.Flags().StringVar(&f.quotasFile, "quotas", "", "File of 'Name: N' quota lines")
	cmd.Flags().StringVar(&f.leavesFile, "leaves", "", "File of 'Name: d1, d2' leave lines")
	cmd.Flags().StringVar(&f.requestsFile, "requests", "", "File of 'Name: d1, d2' request lines")
	cmd.Flags().BoolVar(&f.sample, "sample", false, "Use the built-in sample quotas, leaves and requests")
	cmd.Flags().BoolVar(&f.allowAlternateDays, "allow-alternate-days", false, "Do not penalise every-other-day duty patterns")
	cmd.Flags().StringArrayVar(&f.assign, "assign", nil, "Manually put someone on duty after generation, as 'Name: d1, d2' (repeatable)")
	cmd.Flags().StringArrayVar(&f.unassign, "unassign", nil, "Manually take someone off duty after generation, as 'Name: d1, d2' (repeatable)")
}

// applyRunOptions copies the per-run rule switch and manual edits into params
func (f *inputFlags) applyRunOptions(params *services.GenerateParams) {
	params.AllowAlternateDays = f.allowAlternateDays
	params.AssignText = strings.Join(f.assign, "\n")
	params.UnassignText = strings.Join(f.unassign, "\n")
}

// zeroBasedMonth validates the 1-12 month flag and converts it for the engine
func (f *inputFlags) zeroBasedMonth() (int, error) {
	if f.month < 1 || f.month > 12 {
		return 0, fmt.Errorf("month must be between 1 and 12, got: %d", f.month)
	}
	return f.month - 1, nil
}

// params reads the input files into generation parameters
func (f *inputFlags) params() (services.GenerateParams, error) {
	month, err := f.zeroBasedMonth()
	if err != nil {
		return services.GenerateParams{}, err
	}

	params := services.GenerateParams{
		Year:   f.year,
		Month:  month,
		PerDay: f.perDay,
	}

	if f.sample {
		params.QuotasText = parser.SampleQuotas
		params.LeavesText = parser.SampleLeaves
		params.RequestsText = parser.SampleRequests
		return params, nil
	}

	if f.quotasFile == "" {
		return services.GenerateParams{}, fmt.Errorf("--quotas is required unless --sample is set")
	}

	if params.QuotasText, err = readOptional(f.quotasFile); err != nil {
		return services.GenerateParams{}, err
	}
	if params.LeavesText, err = readOptional(f.leavesFile); err != nil {
		return services.GenerateParams{}, err
	}
	if params.RequestsText, err = readOptional(f.requestsFile); err != nil {
		return services.GenerateParams{}, err
	}

	return params, nil
}

// readOptional returns the file contents, or "" when no path is given
func readOptional(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
