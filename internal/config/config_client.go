package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the notes API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Token is the access token sent with note requests.
	// Env: NOTES_TOKEN
	Token string `env:"NOTES_TOKEN"`

	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"CLIENT_LOG_LEVEL"`
}

// GetClientConfig builds the client configuration from defaults,
// environment variables and the global flags found at the start of args.
// It returns the arguments left after the global flags (the subcommand and
// its own arguments).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		LogLevel: "info",
	}

	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", cfg.Adapter.HTTPAddress, "Notes API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", cfg.Adapter.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "Access token")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), cfg.validate()
}
