// Package config loads runtime settings for the markpad CLI.
//
// Values are resolved in three layers, later ones taking precedence:
// built-in defaults, a JSON config file (if -c/-config points at one),
// then command-line flags.
package config

// Config holds runtime settings for the markpad CLI.
type Config struct {
	// DatabasePath is the sqlite file holding locally persisted documents.
	DatabasePath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is "text" or "json".
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "markpad.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
