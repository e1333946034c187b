// Package config loads runtime settings for the userdesk client. Sources
// overlay in a fixed order: built-in defaults, then a JSON file, then
// environment variables, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the userdesk CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the account backend.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: sqlite file holding the persisted token pair.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "userdesk.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
