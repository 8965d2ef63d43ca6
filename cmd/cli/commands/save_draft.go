package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/pkg/core/services"
)

// SaveDraftCmd creates the saveDraft command
func SaveDraftCmd(app *AppContext) *cobra.Command {
	var (
		input inputFlags
		name  string
	)

	cmd := &cobra.Command{
		Use:   "saveDraft",
		Short: "Save a month's quotas, leaves and requests as a draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := input.params()
			if err != nil {
				return err
			}

			app.Logger.Debug("saveDraft command", zap.String("name", name))

			draft, err := services.SaveDraft(app.Ctx, app.Database, app.Cfg, app.Logger, name, params)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Draft saved\n\n")
			fmt.Fprintf(cmd.OutOrStdout(), "Draft ID: %s\n", draft.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Name:     %s\n", draft.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Month:    %s\n\n", draft.Period())

			return nil
		},
	}

	input.register(cmd, time.Now())
	cmd.Flags().StringVar(&name, "name", "", "Draft name (defaults to \"Draft YYYY-MM\")")

	return cmd
}
