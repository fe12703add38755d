package domain

import "time"

// User is the identity record owned by the credential store.
//
// Invariant: at least one of PasswordHash/GoogleID is set (enforced by the
// schema), Email is globally unique, and ID never changes or is reused.
// Empty string means absent for the two optional credentials.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt encoded; empty for OAuth-only accounts
	GoogleID     string // federated id; empty for password-only accounts
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the caller-visible projection of a User, embedded in
// register/login responses.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the projection safe to hand back to clients.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}
