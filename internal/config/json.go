package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from a JSON string in
// time.ParseDuration format (e.g. "30s", "1h").
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDuration, err)
	}
	*d = Duration(parsed)

	return nil
}

// jsonConfig mirrors StructuredConfig with JSON tags and string durations.
type jsonConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth"`
	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"database_uri"`
		} `json:"db"`
	} `json:"storage"`
	Server struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`
	Pagination struct {
		NewsLimit int `json:"news_limit"`
		UserLimit int `json:"user_limit"`
	} `json:"pagination"`
	App struct {
		Version string `json:"version"`
	} `json:"app"`
}

// getJSONConfig reads and parses the JSON configuration file at path.
func getJSONConfig(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{}
	cfg.Auth.TokenSignKey = jc.Auth.TokenSignKey
	cfg.Auth.TokenIssuer = jc.Auth.TokenIssuer
	cfg.Auth.TokenDuration = time.Duration(jc.Auth.TokenDuration)
	cfg.Storage.DB.Driver = jc.Storage.DB.Driver
	cfg.Storage.DB.DSN = jc.Storage.DB.DSN
	cfg.Server.HTTPAddress = jc.Server.HTTPAddress
	cfg.Server.RequestTimeout = time.Duration(jc.Server.RequestTimeout)
	cfg.Pagination.NewsLimit = jc.Pagination.NewsLimit
	cfg.Pagination.UserLimit = jc.Pagination.UserLimit
	cfg.App.Version = jc.App.Version

	return cfg, nil
}
