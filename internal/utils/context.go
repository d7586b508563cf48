// Package utils provides general-purpose helpers used across the server:
// typed context keys, JSON response writing, the resty HTTP client,
// session tokens, password hashing, identifiers and date handling.
package utils

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// contextKey is a private type for context keys, so values stored by this
// package cannot collide with string keys from other packages.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// EmailCtxKey stores the authenticated account email.
	EmailCtxKey = contextKey("email")
	// RoleCtxKey stores the authenticated account role.
	RoleCtxKey = contextKey("role")
)

// WithSession returns a copy of ctx carrying the authenticated email and role.
func WithSession(ctx context.Context, email string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, EmailCtxKey, email)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetEmailFromContext returns the authenticated email. ok is false when the
// value is missing, empty or of an unexpected type.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok && email != ""
}

// GetRoleFromContext returns the authenticated role.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
