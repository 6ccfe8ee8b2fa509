package models

import "github.com/google/uuid"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Password and IV must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	ID uuid.UUID `json:"id"`

	Lastname   string `json:"lastname"`
	Firstname  string `json:"firstname"`
	Middlename string `json:"middlename"`

	// Initials is a short display form of the user's name (e.g. "И.И.").
	Initials string `json:"initials,omitempty"`

	Phone string `json:"phone"`
	Email string `json:"email"`

	// Login is the unique user login identifier used during authentication.
	Login string `json:"login"`

	// Password stores the hex-encoded ciphertext of the user's password.
	// The value is reversible with the service encryption key and IV;
	// it is never serialized to JSON.
	Password string `json:"-"`

	// IV is the hex-encoded initialization vector used to encrypt Password.
	// Unique per user record. Never serialized to JSON.
	IV string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials carries the login/password pair of an authentication request.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Registration carries the fields of an account-creation request.
type Registration struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate represents a partial update of a user profile.
// Only non-nil fields overwrite stored state.
type UserUpdate struct {
	Lastname   *string `json:"lastname,omitempty"`
	Firstname  *string `json:"firstname,omitempty"`
	Middlename *string `json:"middlename,omitempty"`
	Initials   *string `json:"initials,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Login      *string `json:"login,omitempty"`
}
