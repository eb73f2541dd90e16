package config

import "errors"

// Sentinel errors for configuration loading.
var (
	// ErrInvalidYAML indicates invalid YAML syntax in a configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)
