package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/pkg/core/services"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	var (
		input   inputFlags
		draftID string
		seed    uint64
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a month's duty roster",
		Long: `Generate a duty roster from quota, leave and request files, or from a saved draft.
The search is reproducible: pass --seed with the seed printed by a previous run.
Combine --seed with --assign/--unassign to adjust a generated roster by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := resolveParams(app, cmd, &input, draftID)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				params.Seed = &seed
			}

			app.Logger.Debug("generate command",
				zap.Int("year", params.Year),
				zap.Int("month", params.Month),
				zap.String("draft_id", draftID))

			generated, err := services.GenerateRoster(app.Ctx, app.Cfg, app.Logger, params)
			if err != nil {
				return err
			}

			renderRoster(cmd.OutOrStdout(), generated)

			if csvPath != "" {
				if err := writeCSV(app, csvPath, generated); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nRoster written to %s\n", csvPath)
			}

			return nil
		},
	}

	input.register(cmd, time.Now())
	cmd.Flags().StringVar(&draftID, "draft", "", "Generate from a saved draft ID, or \"latest\" for the month's newest draft")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible search")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Also write the roster to this CSV file")

	return cmd
}

// resolveParams reads the generation input from a draft when one is named, otherwise from the flags.
// Manual edits and the alternate-day switch apply either way.
func resolveParams(app *AppContext, cmd *cobra.Command, input *inputFlags, draftID string) (services.GenerateParams, error) {
	params, err := loadParams(app, cmd, input, draftID)
	if err != nil {
		return services.GenerateParams{}, err
	}
	input.applyRunOptions(&params)
	return params, nil
}

func loadParams(app *AppContext, cmd *cobra.Command, input *inputFlags, draftID string) (services.GenerateParams, error) {
	if draftID == "" {
		return input.params()
	}

	month, err := input.zeroBasedMonth()
	if err != nil {
		return services.GenerateParams{}, err
	}

	id := draftID
	if id == "latest" {
		id = ""
	}

	draft, err := services.LoadDraft(app.Ctx, app.Database, app.Logger, id, input.year, month)
	if err != nil {
		return services.GenerateParams{}, err
	}

	params := services.ParamsFromDraft(draft)
	if cmd.Flags().Changed("per-day") {
		params.PerDay = input.perDay
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Using draft %q (%s, %s)\n\n", draft.Name, draft.ID, draft.Period())
	return params, nil
}

func writeCSV(app *AppContext, path string, generated *services.GeneratedRoster) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}

	if err := services.ExportRoster(file, generated, app.Logger); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
