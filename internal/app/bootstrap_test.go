package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"coursectl/internal/config"
	"coursectl/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, "/tmp/c.yaml", "http://api:8080")
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/c.yaml", cfg.ConfigPath)
	assert.Equal(t, "http://api:8080", cfg.APIBase)
	assert.Nil(t, cfg.Settings)
}

func TestNewApplication(t *testing.T) {
	t.Setenv(config.APIBaseEnvVar, "")

	tests := []struct {
		name        string
		file        string
		apiBase     string
		wantBase    string
		wantTab     model.Tab
		wantDebug   bool
		expectError bool
	}{
		{
			name:     "file settings",
			file:     "apiBase: http://backend:5000/\nui:\n  defaultTab: participants\n",
			wantBase: "http://backend:5000",
			wantTab:  model.TabParticipants,
		},
		{
			name:     "flag wins over file",
			file:     "apiBase: http://backend:5000\n",
			apiBase:  "http://override:9000",
			wantBase: "http://override:9000",
			wantTab:  model.TabCourses,
		},
		{
			name:      "debug from file",
			file:      "ui:\n  debug: true\n",
			wantBase:  config.DefaultAPIBase,
			wantTab:   model.TabCourses,
			wantDebug: true,
		},
		{
			name:        "invalid flag",
			file:        "apiBase: http://backend:5000\n",
			apiBase:     "not a url",
			expectError: true,
		},
		{
			name:        "invalid file",
			file:        "apiBase: [",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			cfg := NewConfig(false, writeConfig(t, tt.file), tt.apiBase)

			a, err := newApplication(cfg, &logs)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantBase, a.Client().BaseURL())
			assert.Equal(t, tt.wantBase, a.Settings().APIBase)

			tc := tuiConfig(cfg, a.Client())
			assert.Equal(t, tt.wantTab, tc.DefaultTab)
			assert.Equal(t, tt.wantDebug, tc.DebugMode)
			assert.Same(t, a.Client(), tc.Client)
		})
	}
}

func TestNewApplication_MissingConfigPath(t *testing.T) {
	cfg := NewConfig(false, filepath.Join(t.TempDir(), "missing.yaml"), "")

	_, err := newApplication(cfg, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration from path")
}

func TestNewApplication_EnvOverride(t *testing.T) {
	t.Setenv(config.APIBaseEnvVar, "http://from-env:7000")
	cfg := NewConfig(false, writeConfig(t, "apiBase: http://backend:5000\n"), "")

	a, err := newApplication(cfg, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "http://from-env:7000", a.Client().BaseURL())
}
