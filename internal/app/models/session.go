package models

// SessionRecord is the projection of a User cached in the simple store under
// the currentUser key so the app can skip authentication on the next start.
// It is a cache of the authenticated user's public fields, not authoritative:
// the account store remains the source of truth.
type SessionRecord struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	ID       int64  `json:"id"`
}
