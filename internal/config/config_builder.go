package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// configBuilder accumulates partial configurations from every source and
// merges them into a single StructuredConfig. Sources are merged in the
// order they were loaded; mergo only fills zero-valued fields, so earlier
// sources take priority over later ones.
type configBuilder struct {
	configs []*StructuredConfig
	errs    []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// withEnv loads configuration values from environment variables.
func (b *configBuilder) withEnv() *configBuilder {
	cfg, err := getEnvConfig()
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %w", ErrEnvConfigLoad, err))
		return b
	}
	b.configs = append(b.configs, cfg)

	return b
}

// withFlags loads configuration values from command-line flags.
func (b *configBuilder) withFlags() *configBuilder {
	cfg, err := getFlagsConfig()
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %w", ErrFlagsConfigLoad, err))
		return b
	}
	b.configs = append(b.configs, cfg)

	return b
}

// withJSON loads configuration values from a JSON file. The file path is
// taken from the sources loaded so far, so withJSON must be called after
// withEnv and withFlags. A missing path is not an error; the source is
// simply skipped.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonFilePath()
	if path == "" {
		return b
	}

	cfg, err := getJSONConfig(path)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %w", ErrJSONConfigLoad, err))
		return b
	}
	b.configs = append(b.configs, cfg)

	return b
}

// withDefaults appends the built-in defaults as the lowest-priority source.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())

	return b
}

// build merges all loaded sources into a single config and validates it.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if len(b.errs) != 0 {
		return nil, fmt.Errorf("%w: %v", ErrConfigBuild, b.errs)
	}

	merged := &StructuredConfig{}
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfigMerge, err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}

// jsonFilePath returns the first non-empty JSON file path among the sources
// loaded so far.
func (b *configBuilder) jsonFilePath() string {
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			return cfg.JSONFilePath
		}
	}

	return ""
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   "newsroom",
			TokenDuration: 1 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Driver: "pgx",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Pagination: Pagination{
			NewsLimit: 2,
			UserLimit: 5,
		},
		App: App{
			Version: "N/A",
		},
	}
}
