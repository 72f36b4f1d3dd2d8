// Package memory provides a mutex-guarded in-memory implementation of the
// persistence layer. It backs unit tests and local development without a
// running PostgreSQL instance.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DARSHAN2224/authentication/internal/domain/entity"
	"github.com/DARSHAN2224/authentication/internal/domain/repository"
)

// AccountRepository implements repository.AccountRepository with an in-memory
// map. All operations, including the consume ones, are serialized by a single
// mutex, which gives the same once-only consumption guarantee the SQL
// implementation gets from its conditional UPDATE.
type AccountRepository struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[uuid.UUID]*entity.Account),
	}
}

// Create stores a new account, assigning an ID when none is set.
func (repo *AccountRepository) Create(_ context.Context, account *entity.Account) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.accounts {
		if existing.Email == account.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}

	stored := cloneAccount(account)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	repo.accounts[stored.ID] = stored

	return cloneAccount(stored), nil
}

// FindByID retrieves an account by its ID.
func (repo *AccountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	account, ok := repo.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return cloneAccount(account), nil
}

// FindByEmail retrieves an account by its email address.
func (repo *AccountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, account := range repo.accounts {
		if account.Email == email {
			return cloneAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

// Update replaces the stored state of an existing account.
func (repo *AccountRepository) Update(_ context.Context, account *entity.Account) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.accounts[account.ID]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	for id, other := range repo.accounts {
		if id != account.ID && other.Email == account.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}

	stored := cloneAccount(account)
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	repo.accounts[stored.ID] = stored

	return cloneAccount(stored), nil
}

// ConsumeVerificationCode marks the account holding a live verification code
// as verified and clears the code. Holding the mutex across the match and the
// mutation makes the consumption atomic.
func (repo *AccountRepository) ConsumeVerificationCode(_ context.Context, code string) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := time.Now()
	for _, account := range repo.accounts {
		if account.Verification == nil || account.Verification.Value != code {
			continue
		}
		// An expired secret counts as absent; another account may hold the
		// same value with a live expiry.
		if !account.Verification.Live(now) {
			continue
		}

		account.IsVerified = true
		account.Verification = nil
		account.UpdatedAt = now

		return cloneAccount(account), nil
	}

	return nil, repository.ErrSecretNotFound
}

// ConsumeResetToken replaces the password hash of the account holding a live
// reset token and clears the token.
func (repo *AccountRepository) ConsumeResetToken(_ context.Context, token string, newPasswordHash string) (*entity.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := time.Now()
	for _, account := range repo.accounts {
		if account.PasswordReset == nil || account.PasswordReset.Value != token {
			continue
		}
		if !account.PasswordReset.Live(now) {
			continue
		}

		account.PasswordHash = newPasswordHash
		account.PasswordReset = nil
		account.UpdatedAt = now

		return cloneAccount(account), nil
	}

	return nil, repository.ErrSecretNotFound
}

func cloneAccount(account *entity.Account) *entity.Account {
	clone := *account
	if account.Verification != nil {
		secret := *account.Verification
		clone.Verification = &secret
	}
	if account.PasswordReset != nil {
		secret := *account.PasswordReset
		clone.PasswordReset = &secret
	}
	if account.LastLoginAt != nil {
		lastLogin := *account.LastLoginAt
		clone.LastLoginAt = &lastLogin
	}

	return &clone
}
