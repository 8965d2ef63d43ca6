package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultMaxTrials      = 100
	defaultTimeoutSeconds = 30
	defaultSQLiteDSN      = "duty_roster.db"
)

// RecurringLeave is a leave pattern that repeats every month, e.g. a weekly day off
type RecurringLeave struct {
	Name  string `yaml:"name" validate:"required"`
	RRule string `yaml:"rrule" validate:"required"`
}

// StorageConfig selects where drafts are persisted
type StorageConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=sqlite postgres"`
	DSN    string `yaml:"dsn" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	PerDay          int              `yaml:"perDay" validate:"min=1"`
	MaxTrials       int              `yaml:"maxTrials" validate:"min=1"`
	Workers         int              `yaml:"workers,omitempty" validate:"min=0"`
	TimeoutSeconds  int              `yaml:"timeoutSeconds" validate:"min=1"`
	Storage         StorageConfig    `yaml:"storage"`
	RosterSheetID   string           `yaml:"rosterSheetID,omitempty"`
	OAuthClientPath string           `yaml:"oauthClientPath,omitempty" validate:"omitempty,file"`
	RecurringLeaves []RecurringLeave `yaml:"recurringLeaves,omitempty" validate:"dive"`

	// AllowAlternateDays stops penalising every-other-day duty patterns
	AllowAlternateDays bool `yaml:"allowAlternateDays,omitempty"`
}

// Timeout is the generation deadline
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from duty_roster_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for an environment suffix
// For example, env="test" will look for "duty_roster_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findFile(envFileName("duty_roster_config", env, "yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills optional fields left out of the file
func applyDefaults(cfg *Config) {
	if cfg.PerDay == 0 {
		cfg.PerDay = 1
	}
	if cfg.MaxTrials == 0 {
		cfg.MaxTrials = defaultMaxTrials
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverSQLite
	}
	if cfg.Storage.DSN == "" && cfg.Storage.Driver == DriverSQLite {
		cfg.Storage.DSN = defaultSQLiteDSN
	}
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each recurring leave
	for i, leave := range cfg.RecurringLeaves {
		if _, err := rrule.StrToRRule(leave.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurringLeaves[%d]: %w", i, err)
		}
	}

	return nil
}

// envFileName builds "<base>.<ext>", or "<base>.<env>.<ext>" when env is set
func envFileName(base, env, ext string) string {
	if env == "" {
		return base + "." + ext
	}
	return base + "." + env + "." + ext
}

// findFile looks for name in the current directory, then in the user's home directory
func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}
