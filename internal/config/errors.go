package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid remote service settings
	// (for example, missing access token or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidFilterConfigs indicates an unknown filter mode.
	ErrInvalidFilterConfigs = errors.New("invalid filter configuration")
	// ErrInvalidDisplayConfigs indicates a non-positive display count,
	// fetch limit or truncation length.
	ErrInvalidDisplayConfigs = errors.New("invalid display configuration")
	// ErrInvalidStorageConfigs indicates invalid journal storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
