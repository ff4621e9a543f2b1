package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidLogLevel  = goerr.New("invalid log level")
	ErrInvalidLogFormat = goerr.New("invalid log format")
	ErrInvalidConfig    = goerr.New("invalid configuration")
	ErrConfigNotFound   = goerr.New("configuration file not found")
)
