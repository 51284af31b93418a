package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer    = "go-note-keeper"
	defaultTokenDuration  = 30 * time.Minute
	defaultLogLevel       = "debug"
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxOpenConns   = 10
	defaultMaxIdleConns   = 4
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: defaultMaxOpenConns,
				MaxIdleConns: defaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		},
	}
}
