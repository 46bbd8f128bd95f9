package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidConfig = goerr.New("invalid configuration")
)

// Context keys for error values
const (
	LogLevelKey  = "log_level"
	LogFormatKey = "log_format"
	LogOutputKey = "log_output"
)
