package models

// RemoteUser is the document stored under users/{key} in the remote tree,
// where key is the sanitized email (see store.EmailKey).
//
// Password carries the same bcrypt hash as the local row. It is cleared by
// WithoutSecrets before the record leaves the server.
type RemoteUser struct {
	// Key is the node key the document was read from. It is never written
	// back into the document itself.
	Key string `json:"key,omitempty"`

	// UID mirrors the local row id at the time of registration.
	UID int64 `json:"uid"`

	Username    string `json:"username"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Role        Role   `json:"role"`

	// RegistrationDate is formatted with DateLayout; empty when unknown.
	RegistrationDate string `json:"registrationDate,omitempty"`

	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}

// WithoutSecrets returns a copy of u that is safe to hand to clients.
func (u RemoteUser) WithoutSecrets() RemoteUser {
	u.Password = ""
	return u
}

// ToLocal converts the remote document into a local row. ID is left zero.
func (u RemoteUser) ToLocal() User {
	return User{
		Username:          u.Username,
		Name:              u.Name,
		Surname:           u.Surname,
		Email:             u.Email,
		PasswordHash:      u.Password,
		Gender:            u.Gender,
		DateOfBirth:       u.DateOfBirth,
		Role:              u.Role,
		RegistrationDate:  u.RegistrationDate,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}

// NewRemoteUser builds the remote mirror of a local row.
func NewRemoteUser(u User) RemoteUser {
	return RemoteUser{
		UID:               u.ID,
		Username:          u.Username,
		Name:              u.Name,
		Surname:           u.Surname,
		Email:             u.Email,
		Password:          u.PasswordHash,
		Gender:            u.Gender,
		DateOfBirth:       u.DateOfBirth,
		Role:              u.Role,
		RegistrationDate:  u.RegistrationDate,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}
