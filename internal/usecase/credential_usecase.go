// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/DARSHAN2224/authentication/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// VerifyEmailInput carries the emailed verification code.
type VerifyEmailInput struct {
	Code string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RequestPasswordResetInput identifies the account asking for a reset link.
type RequestPasswordResetInput struct {
	Email string
}

// CompletePasswordResetInput carries the reset token from the emailed link
// together with the replacement password.
type CompletePasswordResetInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the new account's visible profile and the session
// token minted for it. Registration logs the account in immediately.
type RegisterOutput struct {
	Account      *entity.Profile
	SessionToken string
}

// VerifyEmailOutput returns the profile of the freshly verified account.
type VerifyEmailOutput struct {
	Account *entity.Profile
}

// LoginOutput returns the session token and profile after a successful login.
type LoginOutput struct {
	Account      *entity.Profile
	SessionToken string
}

// CredentialUsecase defines the interface for account-credential and
// session-lifecycle operations. This is the contract the delivery layer
// depends on.
type CredentialUsecase interface {
	// Register creates an unverified account, emails it a verification code,
	// and logs it in.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// VerifyEmail consumes a live verification code and marks the matching
	// account as verified.
	VerifyEmail(ctx context.Context, input VerifyEmailInput) (*VerifyEmailOutput, error)

	// Login authenticates an email/password pair and mints a session token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RequestPasswordReset issues a reset token for the account and emails the
	// reset link.
	RequestPasswordReset(ctx context.Context, input RequestPasswordResetInput) error

	// CompletePasswordReset consumes a live reset token and replaces the
	// account's password.
	CompletePasswordReset(ctx context.Context, input CompletePasswordResetInput) error

	// WhoAmI returns the profile bound to an authenticated session.
	WhoAmI(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)
}
