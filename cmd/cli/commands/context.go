package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/duty-roster/internal/config"
	"github.com/jakechorley/duty-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/duty-roster/pkg/db"
	"github.com/jakechorley/duty-roster/pkg/postgres"
	"github.com/jakechorley/duty-roster/pkg/sqlite"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Env      string
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
}

// OpenDatabase connects to the configured draft store, applying migrations where needed
func OpenDatabase(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (db.Database, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		logger.Debug("Opening sqlite database", zap.String("path", cfg.DSN))
		database, err := sqlite.NewDB(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return database, nil

	case config.DriverPostgres:
		logger.Debug("Connecting to postgres")
		database, err := postgres.NewDB(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := database.RunMigrations(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return database, nil

	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// SheetsClient authenticates with Google and returns a client for publishing.
// It is created on demand so commands that don't publish never start the OAuth flow.
func (app *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	oauthClient, err := config.LoadOAuthClient(app.Cfg, app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load oauth client config: %w", err)
	}

	client, err := sheetsclient.NewClient(app.Ctx, oauthClient, app.Env, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return client, nil
}
