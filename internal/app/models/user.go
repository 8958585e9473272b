// Package models defines the data models persisted by the dashvault store.
package models

import "time"

// User is a durable account record. Identity and lifetime are owned by the
// account store; the email is unique across all users.
type User struct {
	// ID is assigned by the store on creation and never changes.
	ID int64

	// Username is a display name with no uniqueness constraint.
	Username string

	// Email is the authentication lookup key, unique across all users.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the creation time in UTC.
	CreatedAt time.Time
}

// UserPatch is a partial account update. Nil fields are left untouched;
// presence, not truthiness, decides whether a field is applied.
type UserPatch struct {
	Username *string
	Email    *string
	// Password is the new plaintext password; the service hashes it before
	// it reaches storage.
	Password *string
}

// IsZero reports whether the patch changes nothing.
func (p UserPatch) IsZero() bool {
	return p.Username == nil && p.Email == nil && p.Password == nil
}
