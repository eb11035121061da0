package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "reposearch/internal/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.GitHub.Page)
	assert.Equal(t, 30, cfg.GitHub.PerPage)
	assert.Equal(t, "Search", cfg.UISettings.Labels.Search)
	assert.Equal(t, "Retry", cfg.UISettings.Labels.Retry)
}

func TestSaveAndLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService()

	cfg := DefaultConfig()
	cfg.GitHub.PerPage = 50
	cfg.UISettings.Labels.Retry = "Try again"
	cfg.OpenCommand = "xdg-open"
	cfg.GitHub.Token = "secret"

	require.NoError(t, svc.SaveToPath(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret", "token must never be written")

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 50, loaded.GitHub.PerPage)
	assert.Equal(t, "Try again", loaded.UISettings.Labels.Retry)
	assert.Equal(t, "xdg-open", loaded.OpenCommand)
	assert.Empty(t, loaded.GitHub.Token)
}

func TestLoadFromPathKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[github]\nper_page = 10\n"), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.GitHub.PerPage)
	assert.Equal(t, "https://api.github.com/", cfg.GitHub.APIURL)
	assert.Equal(t, "Loading...", cfg.UISettings.Labels.Loading)
}

func TestLoadFromPathErrors(t *testing.T) {
	svc := NewConfigService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[github\n"), 0644))
	_, err = svc.LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceWithBus(nil, filepath.Join(t.TempDir(), "none.toml"))
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().GitHub, cfg.GitHub)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("REPOSEARCH_API_URL", "http://127.0.0.1:9999/")
	t.Setenv("REPOSEARCH_PER_PAGE", "5")

	cfg := DefaultConfig()
	ApplyEnvOverrides(cfg)

	assert.Equal(t, "tok", cfg.GitHub.Token)
	assert.Equal(t, "http://127.0.0.1:9999/", cfg.GitHub.APIURL)
	assert.Equal(t, 5, cfg.GitHub.PerPage)
}

func TestLoadEnvReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REPOSEARCH_TEST_TOKEN=from-dotenv\n"), 0644))
	t.Setenv("REPOSEARCH_TEST_TOKEN", "")
	require.NoError(t, os.Unsetenv("REPOSEARCH_TEST_TOKEN"))

	LoadEnv(path)

	assert.Equal(t, "from-dotenv", os.Getenv("REPOSEARCH_TEST_TOKEN"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty api url", func(c *Config) { c.GitHub.APIURL = "" }},
		{"relative api url", func(c *Config) { c.GitHub.APIURL = "api.github.com" }},
		{"per page too large", func(c *Config) { c.GitHub.PerPage = 101 }},
		{"per page zero", func(c *Config) { c.GitHub.PerPage = 0 }},
		{"page zero", func(c *Config) { c.GitHub.Page = 0 }},
		{"negative workers", func(c *Config) { c.Executor.Workers = -1 }},
		{"missing label", func(c *Config) { c.UISettings.Labels.Retry = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrConfigInvalid)
		})
	}
}
