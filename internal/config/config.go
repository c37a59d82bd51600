// Package config provides configuration loading and resolution.
//
// Settings come from STRUCTURE_ME_* environment variables only; no
// configuration file is read.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Debug enables debug-level logging.
	// Env: STRUCTURE_ME_DEBUG, Default: false
	Debug bool

	// Timestamps controls whether timestamps are shown in log output.
	// Env: STRUCTURE_ME_LOG_TIMESTAMPS, Default: unset (off)
	Timestamps *bool
}

// Config represents the structure-me configuration.
type Config struct {
	// TemplateDir replaces the built-in samples with files from a directory.
	// Env: STRUCTURE_ME_TEMPLATE_DIR, Default: "" (built-in samples)
	TemplateDir string

	// Log contains logging-related settings.
	Log LogConfig
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{}
}
