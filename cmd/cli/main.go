package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/cmd/cli/commands"
	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/utils/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var logsDir string
	app := &commands.AppContext{Ctx: ctx}

	rootCmd := &cobra.Command{
		Use:           "roster",
		Short:         "Duty roster generator",
		Long:          `A CLI tool for generating monthly duty rosters from staff quotas, leaves and requests.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app, logsDir)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Database != nil {
				app.Database.Close()
			}
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.Env, "env", "e", "", "Environment (selects duty_roster_config.<env>.yaml)")
	rootCmd.PersistentFlags().StringVar(&logsDir, "logs", logging.DefaultDir, "Directory for debug log files")

	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.SaveDraftCmd(app))
	rootCmd.AddCommand(commands.ListDraftsCmd(app))
	rootCmd.AddCommand(commands.PublishCmd(app))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// initApp sets up logger, config, and database
func initApp(app *commands.AppContext, logsDir string) error {
	var err error

	app.Logger, err = logging.InitLogger(app.Env, logsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", app.Env))

	app.Cfg, err = config.LoadWithEnv(app.Env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded",
		zap.Int("per_day", app.Cfg.PerDay),
		zap.Int("max_trials", app.Cfg.MaxTrials),
		zap.String("storage", app.Cfg.Storage.Driver))

	app.Database, err = commands.OpenDatabase(app.Ctx, app.Cfg.Storage, app.Logger)
	if err != nil {
		return err
	}
	app.Logger.Debug("Database initialized")

	return nil
}
