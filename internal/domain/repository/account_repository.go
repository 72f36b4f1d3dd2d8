// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/DARSHAN2224/authentication/internal/domain/entity"
	"github.com/DARSHAN2224/authentication/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence. They let the application
// layer react to specific outcomes without depending on database errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateEmail is returned when creating an account whose email is already registered.
	ErrDuplicateEmail = errors.New("account email already registered")

	// ErrSecretNotFound is returned by the consume operations when no account
	// holds a live secret with the given value. A secret that exists but has
	// expired, or that was already consumed, yields the same error.
	ErrSecretNotFound = errors.New("no live secret matches")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account and returns it with its generated ID and
	// timestamps. Fails with ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, account *entity.Account) (*entity.Account, error)

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Update persists the full state of an existing account, including
	// clearing secrets that were set to nil, and returns the stored state.
	Update(ctx context.Context, account *entity.Account) (*entity.Account, error)

	// ConsumeVerificationCode finds the account holding a live verification
	// secret equal to code, marks it verified and clears the secret, all in one
	// atomic step per account record. When two callers race on the same code,
	// exactly one receives the account; the other gets ErrSecretNotFound.
	ConsumeVerificationCode(ctx context.Context, code string) (*entity.Account, error)

	// ConsumeResetToken finds the account holding a live reset secret equal to
	// token, replaces its password hash with newPasswordHash and clears the
	// secret atomically. Same race semantics as ConsumeVerificationCode.
	ConsumeResetToken(ctx context.Context, token string, newPasswordHash string) (*entity.Account, error)
}
