package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username        string `json:"username"`
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"dateOfBirth"`
}

// LoginRequest is the body of both login endpoints. Admin selects the
// admin account table for local logins.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

// GoogleSignInRequest carries the ID token obtained by the client from Google.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken"`
}

// ProfileUpdate holds the editable profile fields. Empty strings keep the
// stored value.
type ProfileUpdate struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
}

// CommentRequest is the body of POST /api/recipes/{id}/comments.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// LoginResponse is returned by every successful login together with the
// Authorization header.
type LoginResponse struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	User  any    `json:"user"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
