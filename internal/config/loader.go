package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osGetenv = os.Getenv
var loadDotEnv = func() error { return godotenv.Load() }

const (
	userConfigDir    = ".config/coursectl"
	projectConfigDir = ".coursectl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, project and
// environment settings.
func LoadConfig() (Config, error) {
	cfg := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if cfg, err = overlayFile(cfg, userConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if cfg, err = overlayFile(cfg, projectConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if cfg, err = applyEnv(cfg); err != nil {
		return Config{}, err
	}
	return finish(cfg)
}

// LoadConfigFromPath loads defaults, then the single file at filePath, then
// the environment. Unlike LoadConfig, a missing file is an error.
func LoadConfigFromPath(filePath string) (Config, error) {
	overlay, err := loadConfigFromFile(filePath)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", filePath, err)
	}
	cfg, err := applyEnv(mergeConfigs(GetDefaultConfig(), overlay))
	if err != nil {
		return Config{}, err
	}
	return finish(cfg)
}

// WithAPIBase returns cfg with apiBase replaced, if apiBase is non-empty,
// and re-validates it.
func WithAPIBase(cfg Config, apiBase string) (Config, error) {
	if strings.TrimSpace(apiBase) == "" {
		return cfg, nil
	}
	cfg.APIBase = apiBase
	return finish(cfg)
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func overlayFile(base Config, path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay Config) Config {
	merged := base
	if overlay.APIBase != "" {
		merged.APIBase = overlay.APIBase
	}
	if overlay.UI.DefaultTab != "" {
		merged.UI.DefaultTab = overlay.UI.DefaultTab
	}
	// Debug can only be switched on by an overlay.
	merged.UI.Debug = base.UI.Debug || overlay.UI.Debug
	return merged
}

// applyEnv reads COURSECTL_API_BASE, loading a .env file from the working
// directory first when one exists. A missing .env is fine, an unreadable or
// malformed one is an error.
func applyEnv(cfg Config) (Config, error) {
	if err := loadDotEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env: %w", err)
	}

	if v := strings.TrimSpace(osGetenv(APIBaseEnvVar)); v != "" {
		cfg.APIBase = v
	}
	return cfg, nil
}

func finish(cfg Config) (Config, error) {
	cfg.APIBase = strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the client cannot work with.
func (c Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("config: apiBase is required")
	}
	parsed, err := url.Parse(c.APIBase)
	if err != nil {
		return fmt.Errorf("config: invalid apiBase %q: %w", c.APIBase, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid apiBase %q: missing scheme or host", c.APIBase)
	}
	switch c.UI.DefaultTab {
	case TabCourses, TabParticipants:
	default:
		return fmt.Errorf("config: ui.defaultTab must be %q or %q, got %q", TabCourses, TabParticipants, c.UI.DefaultTab)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
