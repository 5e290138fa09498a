package config

import "time"

// Document drivers.
const (
	DriverYAML   = "yaml"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Drivers lists every accepted document.driver value.
func Drivers() []string {
	return []string{DriverYAML, DriverSQLite, DriverMemory}
}

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SWATCHBOOK_"

// Config is the complete swatchbook configuration. Fields are loaded from
// YAML, then overridden from SWATCHBOOK_* environment variables.
type Config struct {
	Source          SourceConfig   `yaml:"source" envPrefix:"SOURCE_"`
	UI              UIConfig       `yaml:"ui" envPrefix:"UI_"`
	Document        DocumentConfig `yaml:"document" envPrefix:"DOCUMENT_"`
	NotifyOnSuccess bool           `yaml:"notify_on_success" env:"NOTIFY_ON_SUCCESS"`
	Log             LogConfig      `yaml:"log" envPrefix:"LOG_"`
	Metrics         MetricsConfig  `yaml:"metrics" envPrefix:"METRICS_"`
}

// SourceConfig points at the palette service.
type SourceConfig struct {
	BaseURL string        `yaml:"base_url" env:"BASE_URL" validate:"required,http_url"`
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT" validate:"gt=0"`
}

// UIConfig holds the banner timings.
type UIConfig struct {
	DisplayWindow time.Duration `yaml:"display_window" env:"DISPLAY_WINDOW" validate:"gt=0"`
	ErrorDismiss  time.Duration `yaml:"error_dismiss" env:"ERROR_DISMISS" validate:"gt=0"`
}

// DocumentConfig selects the style document backend.
type DocumentConfig struct {
	Driver string `yaml:"driver" env:"DRIVER" validate:"required,driver"`
	Path   string `yaml:"path" env:"PATH" validate:"required_unless=Driver memory"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL" validate:"required,log_level"`
	File  string `yaml:"file" env:"FILE"`
}

// MetricsConfig enables the Prometheus textfile export.
type MetricsConfig struct {
	File string `yaml:"file" env:"FILE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source: SourceConfig{
			BaseURL: "https://lospec.com/palette-list",
			Timeout: 10 * time.Second,
		},
		UI: UIConfig{
			DisplayWindow: 2000 * time.Millisecond,
			ErrorDismiss:  150 * time.Millisecond,
		},
		Document: DocumentConfig{
			Driver: DriverYAML,
			Path:   "swatchbook-styles.yaml",
		},
		Log: LogConfig{Level: "info"},
	}
}
