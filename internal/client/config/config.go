package config

import "time"

// Config holds runtime settings for the moviestream CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - StreamingOrigin: origin serving authenticated media segments.
//   - CredentialsDB: path of the local sqlite credential database.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	APIBaseURL      string
	StreamingOrigin string
	CredentialsDB   string
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.StreamingOrigin = "http://localhost:8085"
	c.CredentialsDB = "moviestream.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
