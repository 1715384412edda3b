// Package config loads runtime configuration for the popstream CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with a .env file loaded first (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the account API
//	-t int      request timeout (seconds)
//	-d string   path to the session database file
//	-i int      session check interval (seconds)
//	-l string   log level
//
// Environment variables
//
//	POPSTREAM_API_BASE_URL
//	POPSTREAM_REQUEST_TIMEOUT        (e.g. "15s")
//	POPSTREAM_SESSION_DB
//	POPSTREAM_SESSION_CHECK_INTERVAL (e.g. "5s")
//	POPSTREAM_LOG_LEVEL
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://popstream.pythonanywhere.com/api",
//	  "request_timeout": "15s",
//	  "session_db_path": "popstream.db",
//	  "session_check_interval": "5s",
//	  "log_level": "info"
//	}
package config
