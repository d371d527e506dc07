package config

import "fmt"

// validate checks that the merged configuration is complete enough to run
// the server.
func (c *StructuredConfig) validate() error {
	if c.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: auth token sign key is required", ErrConfigValidation)
	}
	if c.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: auth token duration must be positive", ErrConfigValidation)
	}
	if c.Storage.DB.Driver != "pgx" && c.Storage.DB.Driver != "sqlite3" {
		return fmt.Errorf("%w: unsupported database driver %q", ErrConfigValidation, c.Storage.DB.Driver)
	}
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database connection string is required", ErrConfigValidation)
	}
	if c.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: server address is required", ErrConfigValidation)
	}
	if c.Pagination.NewsLimit <= 0 || c.Pagination.UserLimit <= 0 {
		return fmt.Errorf("%w: pagination limits must be positive", ErrConfigValidation)
	}

	return nil
}
