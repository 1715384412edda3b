package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Faizan-Cheema/popstream/internal/flagx"
	"github.com/Faizan-Cheema/popstream/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	APIBaseURL           string         `json:"api_base_url"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	SessionDBPath        string         `json:"session_db_path"`
	SessionCheckInterval timex.Duration `json:"session_check_interval"`
	LogLevel             string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// is given via the -c or -config flags. With no such flag the function is a
// no-op. Only fields actually present in the file override the defaults;
// read or unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.SessionCheckInterval.Duration != 0 {
		cfg.SessionCheckInterval = time.Duration(jc.SessionCheckInterval.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
