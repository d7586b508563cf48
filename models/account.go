package models

// GoogleAccount is the identity extracted from a verified Google ID token.
type GoogleAccount struct {
	UID         string
	Email       string
	DisplayName string
	GivenName   string
	FamilyName  string
	PhotoURL    string
}
