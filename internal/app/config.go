package app

import (
	"coursectl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// ConfigPath points at a single config file. Empty means the layered
	// default/user/project lookup.
	ConfigPath string

	// APIBase overrides every configured backend URL when non-empty.
	APIBase string

	// Settings is the loaded configuration, filled in by NewApplication.
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath, apiBase string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
		APIBase:    apiBase,
	}
}

// debugEnabled reports whether --debug or ui.debug asked for debug output.
func (c *Config) debugEnabled() bool {
	return c.Debug || (c.Settings != nil && c.Settings.UI.Debug)
}
