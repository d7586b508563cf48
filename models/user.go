package models

// Role is the access level of an account.
type Role string

const (
	// RoleUser is granted to every self-registered or Google account.
	RoleUser Role = "user"
	// RoleAdmin unlocks the user-management and report endpoints.
	RoleAdmin Role = "admin"
)

// DateLayout is the DD/MM/YYYY layout used for registration dates and
// dates of birth across both user stores.
const DateLayout = "02/01/2006"

// User is a row of the local users table.
//
// PasswordHash holds a bcrypt hash and is never serialized. Accounts created
// through Google sign-in carry an empty hash and cannot log in with a password.
type User struct {
	// ID is the auto-generated primary key.
	ID int64 `json:"id"`

	// Username is the display handle chosen at registration, at most 25
	// characters after trimming.
	Username string `json:"username"`

	Name    string `json:"name"`
	Surname string `json:"surname"`

	// Email is the login identifier. At most one row exists per email.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Role        Role   `json:"role"`

	// RegistrationDate is formatted with DateLayout.
	RegistrationDate string `json:"registrationDate"`

	// ProfilePictureURL is nil until the user uploads a photo or signs in
	// with an identity provider that supplies one.
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
