package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	ErrMissingTokenSignKey     = errors.New("token sign key is required")
	ErrMissingDSN              = errors.New("database DSN is required")
	ErrUnknownDBDriver         = errors.New("unknown database driver")
	ErrNoServerAddress         = errors.New("at least one server address is required")
	ErrInvalidTokenDuration    = errors.New("token duration must be positive")
	ErrInvalidPasswordHashCost = errors.New("password hash cost is out of range")
	ErrInvalidAdapterConfigs   = errors.New("invalid adapter configuration")
)
