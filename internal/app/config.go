package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"runmate/internal/logging"
)

// Config file name inside the home directory.
const ConfigFile = "config.yaml"

// Environment overrides.
const (
	EnvAPIURL     = "RUNMATE_API_URL"
	EnvPassphrase = "RUNMATE_PASSPHRASE"
	EnvLogLevel   = "RUNMATE_LOG_LEVEL"
)

// Config holds the persisted settings plus runtime wiring options.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`

	Home       string       `yaml:"-"` // config directory, e.g. $HOME/.runmate
	Passphrase string       `yaml:"-"` // protects the session and sign-up draft
	HTTP       *http.Client `yaml:"-"` // optional; built from API.Timeout otherwise
}

// APIConfig points at the backend.
type APIConfig struct {
	BaseURL       string  `yaml:"base_url"`
	Timeout       string  `yaml:"timeout"`
	RatePerSecond float64 `yaml:"rate_per_second"`
	Burst         int     `yaml:"burst"`
}

// SearchConfig tunes the interactive search page.
type SearchConfig struct {
	Debounce string `yaml:"debounce"`
}

// LoggingConfig selects level and encoding.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:       "http://127.0.0.1:8080/api/v1",
			Timeout:       "15s",
			RatePerSecond: 10,
			Burst:         5,
		},
		Search:  SearchConfig{Debounce: "500ms"},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// DefaultHome is ~/.runmate.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".runmate"), nil
}

// LoadEnv reads .env from the working directory and then from home. Variables
// already set in the environment win.
func LoadEnv(home string) error {
	for _, path := range []string{".env", filepath.Join(home, ".env")} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Load reads a YAML config file over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the persisted part of the configuration.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvPassphrase); v != "" {
		c.Passphrase = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// GetAPITimeout returns the request timeout as a duration.
func (c *Config) GetAPITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// GetSearchDebounce returns the search debounce delay as a duration.
func (c *Config) GetSearchDebounce() time.Duration {
	d, err := time.ParseDuration(c.Search.Debounce)
	if err != nil || d < 0 {
		return 500 * time.Millisecond
	}
	return d
}

// Validate checks the persisted settings.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q (want http(s)://host[:port]/path)", c.API.BaseURL)
	}
	if d, err := time.ParseDuration(c.API.Timeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid api.timeout %q", c.API.Timeout)
	}
	if c.API.RatePerSecond <= 0 {
		return fmt.Errorf("api.rate_per_second must be positive, got %v", c.API.RatePerSecond)
	}
	if c.API.Burst <= 0 {
		return fmt.Errorf("api.burst must be positive, got %d", c.API.Burst)
	}
	if d, err := time.ParseDuration(c.Search.Debounce); err != nil || d < 0 {
		return fmt.Errorf("invalid search.debounce %q", c.Search.Debounce)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	return nil
}

// BaseURL returns the API base without a trailing slash.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.API.BaseURL, "/")
}
