package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrQuotaExceeded       = errors.New("api quota exceeded")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrInvalidIDToken   = errors.New("invalid identity token")
	ErrMissingEmail     = errors.New("identity token carries no email")
	ErrIdentityDisabled = errors.New("identity provider is not configured")
)
