// Package config loads, merges and validates the server configuration.
//
// Sources are merged field by field; the first source that sets a field
// wins:
//  1. Environment variables (after an optional .env file is loaded)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
