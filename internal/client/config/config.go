package config

import "time"

// Config holds runtime settings for the popstream CLI.
//
// Fields:
//   - APIBaseURL: base URL of the account API, without a trailing slash
//     (all endpoint paths are resolved against this single base).
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDBPath: path to the SQLite file backing the durable session tier.
//   - SessionCheckInterval: how often the CLI re-reads the session store to
//     notice a sign-out performed by another process.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	APIBaseURL           string
	RequestTimeout       time.Duration
	SessionDBPath        string
	SessionCheckInterval time.Duration
	LogLevel             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://popstream.pythonanywhere.com/api"
	c.RequestTimeout = 15 * time.Second
	c.SessionDBPath = "popstream.db"
	c.SessionCheckInterval = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
