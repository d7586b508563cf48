package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldUsername    = "username"
	FieldDateOfBirth = "dateOfBirth"
	FieldRequired    = "required"
)

// AccountValidator validates registration, login and profile payloads.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate checks obj. When fields are given only those rules run; otherwise
// every rule applicable to the payload type runs.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldUsername, FieldEmail, FieldPassword, FieldDateOfBirth}
	}

	for _, field := range fields {
		switch field {
		case FieldRequired:
			if !AreFieldsFilled(r.Username, r.Name, r.Surname, r.Email, r.Password, r.Gender, r.DateOfBirth) {
				return ErrFieldsRequired
			}
		case FieldUsername:
			if !IsUsernameValid(r.Username) {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !IsEmailValid(r.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !IsPasswordValid(r.Password) {
				return ErrInvalidPassword
			}
			if r.ConfirmPassword != "" && r.ConfirmPassword != r.Password {
				return ErrPasswordsDoNotMatch
			}
		case FieldDateOfBirth:
			if err := validateDate(r.DateOfBirth); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AccountValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldEmail}
	}

	for _, field := range fields {
		switch field {
		case FieldRequired:
			if !AreFieldsFilled(r.Email, r.Password) {
				return ErrFieldsRequired
			}
		case FieldEmail:
			if !IsEmailValid(r.Email) {
				return ErrInvalidEmail
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AccountValidator) validateProfileUpdate(r models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldDateOfBirth}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if r.Username != "" && !IsUsernameValid(r.Username) {
				return ErrInvalidUsername
			}
		case FieldDateOfBirth:
			if r.DateOfBirth == "" {
				continue
			}
			if err := validateDate(r.DateOfBirth); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return ErrInvalidDate
	}

	return nil
}
