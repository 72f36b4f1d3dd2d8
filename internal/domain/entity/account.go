// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PendingSecret is a single-use secret bound to an account with an absolute
// expiry. A nil pointer means no secret is pending, so an account can carry at
// most one pending verification secret and one pending reset secret at a time.
type PendingSecret struct {
	Value     string    // The secret itself: a verification code or a reset token.
	ExpiresAt time.Time // The instant after which the secret must be treated as absent.
}

// Live reports whether the secret exists and has not yet expired.
func (s *PendingSecret) Live(now time.Time) bool {
	return s != nil && now.Before(s.ExpiresAt)
}

// Account is the core entity in the system, representing one registered
// identity keyed by its email address.
type Account struct {
	ID            uuid.UUID      // The unique identifier for the account.
	Email         string         // The login identifier, unique across accounts, compared as stored.
	Name          string         // The account holder's display name.
	PasswordHash  string         // The bcrypt hash of the password. Never leaves the domain layer.
	IsVerified    bool           // True once the email address has been verified.
	Verification  *PendingSecret // Pending email-verification code, nil when none is outstanding.
	PasswordReset *PendingSecret // Pending password-reset token, nil when none is outstanding.
	LastLoginAt   *time.Time     // Timestamp of the most recent successful login.
	CreatedAt     time.Time      // Timestamp of when this account was created.
	UpdatedAt     time.Time      // Timestamp of the last modification to this account.
}

// Profile is the externally visible view of an account. It deliberately has no
// field for the password hash or either pending secret, so handing a Profile to
// the delivery layer can never leak credential material.
type Profile struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	IsVerified  bool       `json:"isVerified"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Profile returns the response-safe view of the account.
func (a *Account) Profile() *Profile {
	return &Profile{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		IsVerified:  a.IsVerified,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
	}
}
