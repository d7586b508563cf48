// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while reading the request. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not
	// "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoSession is returned when an authenticated route runs without a
	// session in the request context.
	ErrNoSession = errors.New("no session in request context")

	// ErrAdminRequired is returned when a non-admin session calls an admin route.
	ErrAdminRequired = errors.New("admin role required")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
