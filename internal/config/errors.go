package config

import "errors"

var (
	// ErrInvalidConfig marks a loaded config that failed Validate.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig marks a file, env or unmarshal failure.
	ErrLoadConfig = errors.New("load config failed")
)
