package config

import "github.com/relaykit/relay/util/conf"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`
}

// DefaultConfig holds the default configuration values.
var DefaultConfig = conf.DefaultConfig{
	"log_level":  "info",
	"log_format": "production",
}
