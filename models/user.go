package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique display name of the user.
	Username string `json:"username"`

	// Email is the unique e-mail address used during login.
	Email string `json:"email"`

	// PlainPassword carries the password submitted at registration or login.
	// It is transient: it is used only to derive or verify PasswordHash and
	// MUST never be persisted or written to a response.
	PlainPassword string `json:"plainPassword,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Enabled reports whether the account is active.
	// Set to true upon successful registration.
	Enabled bool `json:"enabled"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAnonymous reports whether the user value represents an unauthenticated
// identity. A zero ID means the user was never loaded from storage.
func (u User) IsAnonymous() bool {
	return u.ID == 0
}
