// Package config loads friendsplit configuration from a TOML file and the
// environment.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all friendsplit configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	App    AppConfig    `toml:"app"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	SessionTTL      Duration `toml:"session_ttl"`
	SweepInterval   Duration `toml:"sweep_interval"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// AppConfig holds the behavior of the bill-splitting state.
type AppConfig struct {
	SeedPath          string `toml:"seed_path,omitempty"`
	AvatarURL         string `toml:"avatar_url"`
	Currency          string `toml:"currency"`
	SelectFirst       bool   `toml:"select_first"`
	ShowNotifications bool   `toml:"show_notifications"`
	CloseOnNoop       bool   `toml:"close_on_noop"`
}

// Duration is a time.Duration written as a string ("30m") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			SessionTTL:      Duration{30 * time.Minute},
			SweepInterval:   Duration{time.Minute},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		App: AppConfig{
			AvatarURL:         "https://i.pravatar.cc/48?{id}",
			Currency:          "€",
			SelectFirst:       true,
			ShowNotifications: true,
			CloseOnNoop:       false,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "friendsplit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "friendsplit")
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path (ConfigPath when empty), applies
// environment overrides and validates the result. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (c *Config) applyEnv() {
	c.Server.Addr = getEnv("FRIENDSPLIT_ADDR", c.Server.Addr)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.App.SeedPath = getEnv("SEED_PATH", c.App.SeedPath)
	c.App.AvatarURL = getEnv("AVATAR_URL", c.App.AvatarURL)
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("invalid config: server.addr is empty")
	}
	if c.Server.SessionTTL.Duration <= 0 {
		return fmt.Errorf("invalid config: server.session_ttl must be positive")
	}
	if c.Server.SweepInterval.Duration <= 0 {
		return fmt.Errorf("invalid config: server.sweep_interval must be positive")
	}
	if c.Server.ShutdownTimeout.Duration <= 0 {
		return fmt.Errorf("invalid config: server.shutdown_timeout must be positive")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid config: unknown log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid config: unknown log.format %q", c.Log.Format)
	}
	if !strings.Contains(c.App.AvatarURL, "{id}") {
		return fmt.Errorf("invalid config: app.avatar_url must contain {id}")
	}
	if c.App.Currency == "" {
		return fmt.Errorf("invalid config: app.currency is empty")
	}
	return nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
