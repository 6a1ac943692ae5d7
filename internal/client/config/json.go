package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmsantos/moviestream/internal/flagx"
	"github.com/dmsantos/moviestream/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be given either as a string like "15s"
// or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	StreamingOrigin string         `json:"streaming_origin"`
	CredentialsDB   string         `json:"credentials_db"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with values loaded from the JSON file selected via
// -c or -config. Missing flag means no JSON is loaded. Only fields present
// in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StreamingOrigin != "" {
		cfg.StreamingOrigin = jc.StreamingOrigin
	}
	if jc.CredentialsDB != "" {
		cfg.CredentialsDB = jc.CredentialsDB
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
