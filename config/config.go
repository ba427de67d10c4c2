package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the root configuration for the SDK and CLI.
type Config struct {
	// BaseURL is the backend origin, e.g. http://localhost:8000.
	BaseURL string `mapstructure:"base_url"`
	// WSURL is the websocket origin. Derived from BaseURL when empty.
	WSURL string `mapstructure:"ws_url"`
	// Mock selects fixture-backed behavior. Fixed for the process lifetime.
	Mock bool `mapstructure:"mock"`
	// Timeout bounds each HTTP request.
	Timeout time.Duration `mapstructure:"timeout"`
	// SessionPath overrides the persisted session file location.
	SessionPath string `mapstructure:"session_path"`
	LogLevel    string `mapstructure:"log_level"`
}

// Load reads configuration from an optional gebeya.yaml, a .env file and
// GEBEYA_* environment variables, in ascending precedence.
func Load() (*Config, error) {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("gebeya")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.gebeya")

	v.SetEnvPrefix("GEBEYA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_url", "http://localhost:8000")
	v.SetDefault("ws_url", "")
	v.SetDefault("mock", false)
	v.SetDefault("timeout", 60*time.Second)
	v.SetDefault("session_path", "")
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.WSURL == "" {
		cfg.WSURL = DeriveWSURL(cfg.BaseURL)
	}
	return cfg, nil
}

// Validate checks invariants that would otherwise surface as confusing
// transport errors deep inside a request.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url %q: missing host", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// DeriveWSURL maps an http(s) origin to its websocket counterpart.
func DeriveWSURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}
