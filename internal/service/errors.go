package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrRegistrationFailed     = errors.New("registration failed")
	ErrRemoteUnavailable      = errors.New("remote store unavailable")

	ErrProfileNotFound   = errors.New("profile not found")
	ErrPhotoUploadFailed = errors.New("photo upload failed")
	ErrFavoriteNotFound  = errors.New("favorite not found")

	ErrIdentityUnavailable = errors.New("identity provider unavailable")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
