package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, an unknown driver or a missing host or file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token issuer or an out-of-range bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
