package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by session tokens. The subject is the
// account email.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the account role at the time the token was issued.
	Role Role `json:"role"`
}

// Token is a signed session token together with its parsed claims.
type Token struct {
	Claims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetEmail extracts the account email from the "sub" claim.
func (t *Token) GetEmail() (string, error) {
	email, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting email from token: %w", err)
	}
	if email == "" {
		return "", fmt.Errorf("error extracting email from token: empty subject")
	}

	return email, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
