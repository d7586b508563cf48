package adapter

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// tokenVerifier is the part of *auth.Client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseIdentityVerifier struct {
	verifier tokenVerifier
	logger   *logger.Logger
}

// NewFirebaseIdentityVerifier checks Google ID tokens issued through
// Firebase Authentication for the project of app.
func NewFirebaseIdentityVerifier(ctx context.Context, app *firebase.App, logger *logger.Logger) (IdentityVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client init failed: %w", err)
	}

	return &firebaseIdentityVerifier{verifier: client, logger: logger}, nil
}

// VerifyIDToken implements [IdentityVerifier]. The profile fields come from
// the standard OpenID claims of the token.
func (v *firebaseIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (models.GoogleAccount, error) {
	token, err := v.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*firebaseIdentityVerifier.VerifyIDToken").Msg("token verification failed")
		return models.GoogleAccount{}, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	account := models.GoogleAccount{
		UID:         token.UID,
		Email:       claim(token.Claims, "email"),
		DisplayName: claim(token.Claims, "name"),
		GivenName:   claim(token.Claims, "given_name"),
		FamilyName:  claim(token.Claims, "family_name"),
		PhotoURL:    claim(token.Claims, "picture"),
	}
	if account.Email == "" {
		return models.GoogleAccount{}, ErrMissingEmail
	}

	return account, nil
}

func claim(claims map[string]any, name string) string {
	s, _ := claims[name].(string)
	return s
}

// disabledIdentityVerifier rejects every token. It is used when no identity
// project is configured.
type disabledIdentityVerifier struct{}

func NewDisabledIdentityVerifier() IdentityVerifier {
	return disabledIdentityVerifier{}
}

func (disabledIdentityVerifier) VerifyIDToken(context.Context, string) (models.GoogleAccount, error) {
	return models.GoogleAccount{}, ErrIdentityDisabled
}
