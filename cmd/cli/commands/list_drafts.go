package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jakechorley/duty-roster/pkg/core/services"
)

// ListDraftsCmd creates the listDrafts command
func ListDraftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listDrafts",
		Short: "List saved drafts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := services.ListDrafts(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(drafts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No drafts saved yet.")
				return nil
			}

			rows := [][]string{{"ID", "Name", "Month", "Per day", "Created"}}
			for _, d := range drafts {
				rows = append(rows, []string{
					d.ID,
					d.Name,
					d.Period(),
					fmt.Sprint(d.PerDay),
					d.CreatedAt.Local().Format("2006-01-02 15:04"),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(rows, func(int) lipgloss.Style { return plainStyle }))
			return nil
		},
	}
}
