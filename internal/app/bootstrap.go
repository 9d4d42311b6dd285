package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"coursectl/internal/api"
	"coursectl/internal/config"
	"coursectl/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application is the main application structure that bootstraps and runs coursectl
type Application struct {
	config *Config
	client *api.Client
}

// NewApplication loads the configuration and builds the backend client.
// Logs go to stderr so command output on stdout stays machine-readable.
func NewApplication(cfg *Config) (*Application, error) {
	return newApplication(cfg, os.Stderr)
}

func newApplication(cfg *Config, logOutput io.Writer) (*Application, error) {
	logging.InitForCLI(levelFor(cfg.Debug), logOutput)

	var settings config.Config
	var err error
	if cfg.ConfigPath != "" {
		settings, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error(bootstrapSubsystem, err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug(bootstrapSubsystem, "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		settings, err = config.LoadConfig()
		if err != nil {
			logging.Error(bootstrapSubsystem, err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug(bootstrapSubsystem, "Loaded configuration using layered approach")
	}

	settings, err = config.WithAPIBase(settings, cfg.APIBase)
	if err != nil {
		return nil, fmt.Errorf("invalid --api-base: %w", err)
	}
	cfg.Settings = &settings

	if cfg.debugEnabled() && !cfg.Debug {
		logging.InitForCLI(logging.LevelDebug, logOutput)
	}
	logging.Debug(bootstrapSubsystem, "Using backend %s", settings.APIBase)

	return &Application{
		config: cfg,
		client: api.NewClient(settings.APIBase),
	}, nil
}

// Client returns the backend client built from the loaded configuration.
func (a *Application) Client() *api.Client {
	return a.client
}

// Settings returns the loaded configuration.
func (a *Application) Settings() config.Config {
	return *a.config.Settings
}

// Run starts the interactive terminal UI and blocks until it exits.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.client)
}

func levelFor(debug bool) logging.LogLevel {
	if debug {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}
