package config

import (
	"github.com/caarlos0/env/v11"
)

// getEnvConfig parses the process environment into a StructuredConfig.
// Unset variables leave the corresponding fields at their zero value so
// that lower-priority sources can fill them in.
func getEnvConfig() (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
