// Package config provides configuration management for the numo CLI.
// Values are merged from defaults, an optional numo.yaml file, NUMO_
// environment variables and command-line flags, in increasing precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	HistoryPath       string      `koanf:"history_path"`
	NoHistory         bool        `koanf:"no_history"`
	RatesEndpoint     string      `koanf:"rates_endpoint"`
	TranslateEndpoint string      `koanf:"translate_endpoint"`
	HTTPTimeout       int         `koanf:"http_timeout"` // seconds
	Verbose           bool        `koanf:"verbose"`
	OutputFormat      string      `koanf:"output"`
	Serve             ServeConfig `koanf:"serve"`
}

// ServeConfig holds configuration for the API server.
type ServeConfig struct {
	Port int `koanf:"port"`
}

// Default configuration values.
const (
	DefaultHistoryFile = ".numo/history.db"
	DefaultHTTPTimeout = 10
	DefaultOutput      = "plain"
	DefaultServePort   = 8646
)
