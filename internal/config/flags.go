package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

// NetAddress is a "host:port" pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// String returns the address in "host:port" form. Implements flag.Value.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a "host:port" string into the receiver. Implements flag.Value.
func (a *NetAddress) Set(value string) error {
	host, portStr, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	a.Host = host
	a.Port = port

	return nil
}

// getFlagsConfig parses command-line flags into a StructuredConfig.
// Flags that were not passed leave their fields at the zero value.
func getFlagsConfig() (*StructuredConfig, error) {
	return parseFlags(flag.NewFlagSet(os.Args[0], flag.ContinueOnError), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	address := &NetAddress{}
	fs.Var(address, "a", "address and port of the HTTP server (host:port)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database connection string")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "database driver (pgx or sqlite3)")
	fs.StringVar(&cfg.Auth.TokenSignKey, "k", "", "secret key used to sign JWT tokens")
	fs.DurationVar(&cfg.Auth.TokenDuration, "t", 0, "JWT token lifetime")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to a JSON configuration file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to a JSON configuration file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = address.String()

	return cfg, nil
}
