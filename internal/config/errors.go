package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing endpoint URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidUploadConfigs indicates invalid planner limits
	// (for example, a zero ceiling).
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidServerConfigs indicates invalid dev server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or file directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
