package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/pkg/core/services"
)

// PublishCmd creates the publish command
func PublishCmd(app *AppContext) *cobra.Command {
	var (
		input inputFlags
		seed  uint64
		force bool
	)

	cmd := &cobra.Command{
		Use:   "publish [draftID]",
		Short: "Generate a roster from a draft and publish it to Google Sheets",
		Long: `Generate a roster from a saved draft and write it to the configured roster spreadsheet.
If no draftID is provided, the latest draft for --year/--month is used.
The month's tab is created, or overwritten if it already exists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draftID := "latest"
			if len(args) > 0 {
				draftID = args[0]
			}

			params, err := resolveParams(app, cmd, &input, draftID)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				params.Seed = &seed
			}

			app.Logger.Debug("publish command", zap.String("draft_id", draftID))

			generated, err := services.GenerateRoster(app.Ctx, app.Cfg, app.Logger, params)
			if err != nil {
				return err
			}

			renderRoster(cmd.OutOrStdout(), generated)

			if !generated.Result.Success && !force {
				return fmt.Errorf("roster has %d unfilled slots; rerun with --force to publish anyway",
					generated.Result.UnfilledSlots)
			}

			client, err := app.SheetsClient()
			if err != nil {
				return err
			}

			published, err := services.PublishRoster(client, app.Cfg, app.Logger, generated)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n✅ Roster Published Successfully\n\n")
			fmt.Fprintf(cmd.OutOrStdout(), "Tab:      %s\n", published.TabTitle)
			fmt.Fprintf(cmd.OutOrStdout(), "Sheet ID: %s\n", published.SpreadsheetID)
			fmt.Fprintf(cmd.OutOrStdout(), "Seed:     %d\n\n", generated.Result.Seed)

			return nil
		},
	}

	input.register(cmd, time.Now())
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible search")
	cmd.Flags().BoolVar(&force, "force", false, "Publish even if some slots are unfilled")

	return cmd
}
