// Package config provides centralized configuration management for the extractor.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables; CLI flags
// override them per run.
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Extract ExtractConfig
	Logging LoggingConfig
}

// InputConfig holds workbook location settings.
type InputConfig struct {
	// Paths are candidate workbook locations, probed in order (comma-separated).
	Paths []string `env:"EXCEL_PATHS" envAlt:"INPUT_PATHS" default:"data/Analisis_Esquemas_Condiciones_anom.xlsx,Analisis_Esquemas_Condiciones_anom.xlsx"`
}

// OutputConfig holds file-mode output settings.
type OutputConfig struct {
	// RecordsPath is where the indented record array is written (default: data.json)
	RecordsPath string `env:"OUTPUT_RECORDS_PATH" default:"data.json"`

	// StatsPath is where aggregate stats are written (default: stats.json)
	StatsPath string `env:"OUTPUT_STATS_PATH" default:"stats.json"`

	// WriteStats controls whether the stats file is produced (default: true)
	WriteStats bool `env:"OUTPUT_WRITE_STATS" default:"true"`

	// FiltersPath, when set, receives the distinct facility/scheme/tag values
	FiltersPath string `env:"OUTPUT_FILTERS_PATH"`
}

// ExtractConfig holds record normalization settings.
type ExtractConfig struct {
	// DefaultYear replaces a missing or unparsable scheme year (default: 2025)
	DefaultYear int `env:"DEFAULT_YEAR" default:"2025"`

	// SheetsFile is an optional YAML file replacing the built-in sheet list
	SheetsFile string `env:"SHEETS_FILE"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
