package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid configuration",
			cfg: Config{
				YouTube: YouTubeConfig{APIKey: "valid-api-key"},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
		},
		{
			name: "missing API key",
			cfg: Config{
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: "youtube.api_key must be set to a valid API key",
		},
		{
			name: "placeholder API key",
			cfg: Config{
				YouTube: YouTubeConfig{APIKey: "your-api-key-here"},
				Logging: LoggingConfig{Level: "info", Format: "console"},
			},
			wantErr: "youtube.api_key must be set to a valid API key",
		},
		{
			name: "invalid logging level",
			cfg: Config{
				YouTube: YouTubeConfig{APIKey: "valid-api-key"},
				Logging: LoggingConfig{Level: "verbose", Format: "console"},
			},
			wantErr: "invalid logging level: verbose",
		},
		{
			name: "invalid logging format",
			cfg: Config{
				YouTube: YouTubeConfig{APIKey: "valid-api-key"},
				Logging: LoggingConfig{Level: "info", Format: "xml"},
			},
			wantErr: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
youtube:
  api_key: file-api-key
  user_agent: ytdata-test/1.0
filter:
  default: 'contains(Title, "go")'
  presets:
    recent: 'PublishedAt > daysAgo(7)'
logging:
  level: debug
  format: json
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-api-key", cfg.YouTube.APIKey)
	assert.Equal(t, "ytdata-test/1.0", cfg.YouTube.UserAgent)
	assert.Equal(t, 30, cfg.YouTube.Timeout)
	assert.Equal(t, `contains(Title, "go")`, cfg.Filter.Default)
	assert.Equal(t, `PublishedAt > daysAgo(7)`, cfg.Filter.Presets["recent"])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromEnvironmentOnly(t *testing.T) {
	t.Setenv("YTDATA_YOUTUBE_API_KEY", "env-api-key")

	// Run from an empty directory so no stray config file is found.
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-api-key", cfg.YouTube.APIKey)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
