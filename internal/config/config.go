package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	apperrors "reposearch/internal/errors"
	"reposearch/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version     int              `toml:"version"`
	OpenCommand string           `toml:"open_command"` // empty shows details in the pager instead
	GitHub      GitHubSettings   `toml:"github"`
	UISettings  UISettings       `toml:"ui"`
	Executor    ExecutorSettings `toml:"executor"`
	Paths       PathSettings     `toml:"paths"`
}

// GitHubSettings configures the search endpoint
type GitHubSettings struct {
	APIURL     string `toml:"api_url"`
	TokenEnv   string `toml:"token_env"`
	Token      string `toml:"-"` // resolved from TokenEnv, never written to disk
	Page       int    `toml:"page"`
	PerPage    int    `toml:"per_page"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Labels      Labels `toml:"labels"`
	EventBuffer int    `toml:"event_buffer"`
}

// Labels holds the user-visible strings of the search screen
type Labels struct {
	Search  string `toml:"search"`
	Retry   string `toml:"retry"`
	Loading string `toml:"loading"`
	Error   string `toml:"error"`
}

// ExecutorSettings sizes the background pool used for network calls
type ExecutorSettings struct {
	Workers int `toml:"workers"` // 0 runs every task on its own goroutine
}

// PathSettings holds file locations
type PathSettings struct {
	StateFile string `toml:"state_file"`
	LogFile   string `toml:"log_file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(appDir(), "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	if path != "" {
		cs.filePath = path
	}
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Paths.StateFile = expandPath(cfg.Paths.StateFile)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := appDir()

	return &Config{
		Version: 1,
		GitHub: GitHubSettings{
			APIURL:     "https://api.github.com/",
			TokenEnv:   "GITHUB_TOKEN",
			Page:       1,
			PerPage:    30,
			TimeoutSec: 15,
		},
		UISettings: UISettings{
			Labels: Labels{
				Search:  "Search",
				Retry:   "Retry",
				Loading: "Loading...",
				Error:   "Failed to load data",
			},
			EventBuffer: 16,
		},
		Paths: PathSettings{
			StateFile: filepath.Join(dir, "state.toml"),
			LogFile:   filepath.Join(dir, "reposearch.log"),
		},
	}
}

// LoadEnv reads .env files into the process environment. Missing files
// are ignored.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}

// ApplyEnvOverrides applies environment variable overrides to config
func ApplyEnvOverrides(cfg *Config) {
	if cfg.GitHub.TokenEnv != "" {
		cfg.GitHub.Token = os.Getenv(cfg.GitHub.TokenEnv)
	}
	if apiURL := os.Getenv("REPOSEARCH_API_URL"); apiURL != "" {
		cfg.GitHub.APIURL = apiURL
	}
	if perPage := os.Getenv("REPOSEARCH_PER_PAGE"); perPage != "" {
		if n, err := strconv.Atoi(perPage); err == nil {
			cfg.GitHub.PerPage = n
		}
	}
	if stateFile := os.Getenv("REPOSEARCH_STATE_FILE"); stateFile != "" {
		cfg.Paths.StateFile = expandPath(stateFile)
	}
}

// Validate checks that the configuration can drive a search
func (c *Config) Validate() error {
	if c.GitHub.APIURL == "" {
		return fmt.Errorf("%w: github.api_url is empty", apperrors.ErrConfigInvalid)
	}
	if u, err := url.Parse(c.GitHub.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: github.api_url %q is not an absolute url", apperrors.ErrConfigInvalid, c.GitHub.APIURL)
	}
	if c.GitHub.PerPage < 1 || c.GitHub.PerPage > 100 {
		return fmt.Errorf("%w: github.per_page must be between 1 and 100, got %d", apperrors.ErrConfigInvalid, c.GitHub.PerPage)
	}
	if c.GitHub.Page < 1 {
		return fmt.Errorf("%w: github.page must be positive, got %d", apperrors.ErrConfigInvalid, c.GitHub.Page)
	}
	if c.Executor.Workers < 0 {
		return fmt.Errorf("%w: executor.workers must not be negative", apperrors.ErrConfigInvalid)
	}
	l := c.UISettings.Labels
	if l.Search == "" || l.Retry == "" || l.Loading == "" || l.Error == "" {
		return fmt.Errorf("%w: ui.labels must all be set", apperrors.ErrConfigInvalid)
	}
	return nil
}

// appDir returns the reposearch directory under the user config dir
func appDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "reposearch")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
