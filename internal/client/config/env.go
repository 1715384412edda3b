package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig is a DTO for environment-based settings. A .env file in the
// working directory is loaded first (missing file is fine), then the process
// environment is parsed on top of it.
type envConfig struct {
	APIBaseURL           string        `env:"POPSTREAM_API_BASE_URL"`
	RequestTimeout       time.Duration `env:"POPSTREAM_REQUEST_TIMEOUT"`
	SessionDBPath        string        `env:"POPSTREAM_SESSION_DB"`
	SessionCheckInterval time.Duration `env:"POPSTREAM_SESSION_CHECK_INTERVAL"`
	LogLevel             string        `env:"POPSTREAM_LOG_LEVEL"`
}

// parseEnv overlays Config with values from the environment. Only variables
// that are actually set override earlier sources. Parse errors panic, same
// as a malformed JSON config.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.SessionDBPath != "" {
		cfg.SessionDBPath = ec.SessionDBPath
	}
	if ec.SessionCheckInterval != 0 {
		cfg.SessionCheckInterval = ec.SessionCheckInterval
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
