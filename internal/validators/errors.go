package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrFieldsRequired      = errors.New("all fields must be filled")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidPassword     = errors.New("password must be 8-16 characters long and contain an uppercase letter")
	ErrInvalidUsername     = errors.New("username must not be blank and at most 25 characters long")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrInvalidDate         = errors.New("date must be formatted as DD/MM/YYYY")
)
