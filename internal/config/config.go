// Package config holds runtime settings for the marketplace CLI.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: location of the local SQLite database file.
//   - SessionKey: HMAC key signing the persisted session pointer.
//   - Seed: whether to populate an empty catalog with sample listings.
type Config struct {
	DatabasePath string
	SessionKey   string
	Seed         bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "pentoria.db"
	c.SessionKey = "pentoria-local-session"
	c.Seed = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
