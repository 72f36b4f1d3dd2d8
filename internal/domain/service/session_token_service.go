package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionTokenService mints and validates the opaque bearer token that binds a
// session to an account. Tokens are signed server-side and expire absolutely;
// no session state is stored.
type SessionTokenService interface {
	// Mint creates a signed token embedding the account ID and an absolute expiry.
	Mint(accountID uuid.UUID) (string, error)

	// Validate checks signature and expiry and returns the embedded account ID.
	// Every failure mode (tampering, wrong signature, expiry) yields the same
	// Unauthenticated error so the caller learns nothing about which check failed.
	Validate(token string) (uuid.UUID, error)

	// SessionDuration returns the configured token lifetime, used by the
	// delivery layer to scope the session cookie.
	SessionDuration() time.Duration
}
