package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the environment. A local .env file
// is loaded first when present; a missing file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("MOVIESTREAM_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("MOVIESTREAM_STREAMING_ORIGIN"); v != "" {
		cfg.StreamingOrigin = v
	}
	if v := os.Getenv("MOVIESTREAM_CREDENTIALS_DB"); v != "" {
		cfg.CredentialsDB = v
	}
	if v := os.Getenv("MOVIESTREAM_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
