package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional user configuration. Every field has a working
// default; the file only needs to exist to change something.
type Config struct {
	// DBPath overrides the state database location.
	DBPath string `toml:"db_path"`
	// PollIntervalSeconds is how often a long-lived UI re-checks whether the
	// calendar day rolled over.
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
	// AllowPastEdits enables habit toggles on already-settled past days,
	// with the settlement correction applied per edit.
	AllowPastEdits bool `toml:"allow_past_edits"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{PollIntervalSeconds: 30}
}

// PollInterval returns the day-change poll interval as a duration.
func (c Config) PollInterval() time.Duration {
	if c.PollIntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// DefaultPath returns the config file location, overridable with
// DOPELGANGER_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv("DOPELGANGER_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".dopelganger.toml"), nil
}

// Load reads the config at path. A missing file is not an error and yields
// the defaults; a file that exists but fails to parse is.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
