package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings or an
	// out-of-range bcrypt cost.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or remote tree URL.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRecipesConfigs indicates an unknown provider or a missing
	// API key for a provider that needs one.
	ErrInvalidRecipesConfigs = errors.New("invalid recipes configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSeedConfigs indicates admin seeding without credentials.
	ErrInvalidSeedConfigs = errors.New("invalid seed configuration")
)
