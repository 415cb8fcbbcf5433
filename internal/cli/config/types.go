// Package config provides configuration management for the tidbparse CLI.
//
// Values are layered with koanf: built-in defaults, then a YAML file
// (tidbparse.yaml or tidbparse.yml, or the file named by --config), then
// TIDBPARSE_ environment variables, then explicitly set command-line flags.
package config

import "log/slog"

// Defaults for configuration values.
const (
	DefaultOutput    = "auto"
	DefaultLogFormat = "text"
	DefaultLogLevel  = "warn"
)

// Output modes accepted by the output key.
var outputModes = []string{"auto", "text", "markdown", "json", "yaml", "debug", "table"}

// Log formats accepted by the log_format key.
var logFormats = []string{"text", "json"}

// Config holds all CLI configuration options.
type Config struct {
	Output      string     `koanf:"output"`
	LogLevel    slog.Level `koanf:"log_level"`
	LogFormat   string     `koanf:"log_format"`
	Verbose     bool       `koanf:"verbose"`
	HistoryFile string     `koanf:"history_file"`
	Color       bool       `koanf:"color"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Output:    DefaultOutput,
		LogLevel:  slog.LevelWarn,
		LogFormat: DefaultLogFormat,
		Color:     true,
	}
}

// OutputModes returns the accepted values of the output key.
func OutputModes() []string {
	return append([]string(nil), outputModes...)
}
