package models

import "time"

// User represents an account entity used for authentication and note ownership.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user. Immutable.
	UserID int64 `json:"id"`

	// Username is the unique, case-sensitive login name. Immutable.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the username/password pair sent by clients on
// registration and login.
type Credentials struct {
	Username string `json:"username" validate:"min=3,max=50"`
	Password string `json:"password" validate:"min=6,max=72"`
}
