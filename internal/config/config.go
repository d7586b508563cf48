// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// recipe-keeper server.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and versioning.
	App App `envPrefix:"APP_"`

	// Storage holds the local database, the remote document tree and the
	// photo blob store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and the per-request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Recipes selects and configures the recipe search provider.
	Recipes Recipes `envPrefix:"RECIPES_"`

	// Identity configures Google ID-token verification.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Seed controls creation of the default administrator on startup.
	Seed Seed `envPrefix:"SEED_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath points to a dotenv file loaded before the environment is
	// parsed. Defaults to ".env" in the working directory when it exists.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordCost is the bcrypt cost used for new password hashes.
	// Env: APP_PASSWORD_COST
	PasswordCost int `env:"PASSWORD_COST"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the REST API listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health endpoint address. Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists browser origins, besides the server's own host,
	// that may open the admin users stream.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB     DB     `envPrefix:"DB_"`
	Remote Remote `envPrefix:"REMOTE_"`
	Photos Photos `envPrefix:"PHOTOS_"`
}

// DB holds connection settings for the local relational store.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite file
	// path, optionally prefixed with "sqlite://" or "file:".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Remote holds settings for the remote document tree.
type Remote struct {
	// DatabaseURL is the Firebase Realtime Database URL. The value "memory"
	// selects the in-process tree.
	// Env: STORAGE_REMOTE_DATABASE_URL
	DatabaseURL string `env:"DATABASE_URL"`

	// CredentialsFile is a service-account JSON file. When empty, Google
	// application default credentials are used.
	// Env: STORAGE_REMOTE_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`

	// PollInterval is how often user subscriptions re-read the tree.
	// Env: STORAGE_REMOTE_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Photos holds settings for the profile-picture blob store. When Bucket is
// set photos go to S3, otherwise they are written under Dir.
type Photos struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// PublicURL is the base URL under which uploaded objects are reachable.
	PublicURL string `env:"PUBLIC_URL"`

	// Dir is the local directory used when no bucket is configured.
	Dir string `env:"DIR"`
}

// Recipes selects the recipe search provider.
type Recipes struct {
	// Provider is "mealdb" or "spoonacular".
	// Env: RECIPES_PROVIDER
	Provider string `env:"PROVIDER"`

	// BaseURL overrides the provider's default base URL.
	// Env: RECIPES_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is required by spoonacular.
	// Env: RECIPES_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds connect, read and write of a search call.
	// Env: RECIPES_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Identity configures Firebase Authentication for Google sign-in. When both
// fields are empty Google sign-in is disabled.
type Identity struct {
	CredentialsFile string `env:"CREDENTIALS_FILE"`
	ProjectID       string `env:"PROJECT_ID"`
}

// Enabled reports whether an identity provider is configured.
func (i Identity) Enabled() bool {
	return i.CredentialsFile != "" || i.ProjectID != ""
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the remote-to-local user reconciliation.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Seed describes the default administrator created on startup.
type Seed struct {
	Admin         bool   `env:"ADMIN"`
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// GetStructuredConfig loads, merges and validates the server configuration
// from the .env file, environment variables, flags, the JSON file and the
// defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
