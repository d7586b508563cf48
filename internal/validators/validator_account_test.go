package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username:        "chef",
		Name:            "Julia",
		Surname:         "Child",
		Email:           "julia@example.com",
		Password:        "Bouillabaisse1",
		ConfirmPassword: "Bouillabaisse1",
		Gender:          "Female",
		DateOfBirth:     "15/08/1912",
	}
}

// ---------------------------------------------------------------------------
// RegisterRequest
// ---------------------------------------------------------------------------

func TestAccountValidator_Register(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.RegisterRequest) {}},
		{name: "missing surname", mutate: func(r *models.RegisterRequest) { r.Surname = " " }, wantErr: ErrFieldsRequired},
		{name: "long username", mutate: func(r *models.RegisterRequest) { r.Username = "abcdefghijklmnopqrstuvwxyz" }, wantErr: ErrInvalidUsername},
		{name: "bad email", mutate: func(r *models.RegisterRequest) { r.Email = "julia.example.com" }, wantErr: ErrInvalidEmail},
		{name: "weak password", mutate: func(r *models.RegisterRequest) { r.Password, r.ConfirmPassword = "lowercase", "lowercase" }, wantErr: ErrInvalidPassword},
		{name: "confirmation mismatch", mutate: func(r *models.RegisterRequest) { r.ConfirmPassword = "Different1" }, wantErr: ErrPasswordsDoNotMatch},
		{name: "confirmation omitted", mutate: func(r *models.RegisterRequest) { r.ConfirmPassword = "" }},
		{name: "bad date", mutate: func(r *models.RegisterRequest) { r.DateOfBirth = "1912-08-15" }, wantErr: ErrInvalidDate},
	}

	v := NewAccountValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountValidator_Register_PointerAndFieldScope(t *testing.T) {
	v := NewAccountValidator()
	req := validRegisterRequest()
	req.Password = "weak"

	assert.ErrorIs(t, v.Validate(context.Background(), &req), ErrInvalidPassword)
	assert.NoError(t, v.Validate(context.Background(), &req, FieldEmail, FieldUsername))
}

func TestAccountValidator_UnknownField(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), validRegisterRequest(), "favourite_colour")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestAccountValidator_UnsupportedType(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// LoginRequest / ProfileUpdate
// ---------------------------------------------------------------------------

func TestAccountValidator_Login(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.co", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.co"}), ErrFieldsRequired)
	assert.ErrorIs(t, v.Validate(ctx, &models.LoginRequest{Email: "nope", Password: "x"}), ErrInvalidEmail)
}

func TestAccountValidator_ProfileUpdate(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ProfileUpdate{}))
	assert.NoError(t, v.Validate(ctx, models.ProfileUpdate{Username: "new", DateOfBirth: "01/01/2000"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{Username: "abcdefghijklmnopqrstuvwxyz"}), ErrInvalidUsername)
	assert.ErrorIs(t, v.Validate(ctx, &models.ProfileUpdate{DateOfBirth: "2000"}), ErrInvalidDate)
}
