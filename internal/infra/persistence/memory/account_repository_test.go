package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DARSHAN2224/authentication/internal/domain/entity"
	"github.com/DARSHAN2224/authentication/internal/domain/repository"
)

func newTestAccount(email string) *entity.Account {
	return &entity.Account{
		Email:        email,
		Name:         "Test Person",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
	}
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestAccount("a@example.com"))
	require.NoError(t, err)
	require.NotEqual(t, created.ID.String(), "00000000-0000-0000-0000-000000000000")

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_CreateDuplicateEmail(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestAccount("a@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestAccount("a@example.com"))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestAccountRepository_FindReturnsCopy(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestAccount("a@example.com"))
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	found.Email = "mutated@example.com"

	again, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", again.Email)
}

func TestAccountRepository_ConsumeVerificationCode(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	account := newTestAccount("a@example.com")
	account.Verification = &entity.PendingSecret{
		Value:     "123456",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	created, err := repo.Create(ctx, account)
	require.NoError(t, err)

	consumed, err := repo.ConsumeVerificationCode(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, created.ID, consumed.ID)
	assert.True(t, consumed.IsVerified)
	assert.Nil(t, consumed.Verification)

	// A consumed code cannot be replayed.
	_, err = repo.ConsumeVerificationCode(ctx, "123456")
	assert.ErrorIs(t, err, repository.ErrSecretNotFound)
}

func TestAccountRepository_ConsumeVerificationCodeExpired(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	account := newTestAccount("a@example.com")
	account.Verification = &entity.PendingSecret{
		Value:     "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	_, err := repo.Create(ctx, account)
	require.NoError(t, err)

	_, err = repo.ConsumeVerificationCode(ctx, "123456")
	assert.ErrorIs(t, err, repository.ErrSecretNotFound)
}

func TestAccountRepository_ConsumeVerificationCodeExpiredDoesNotShadowLive(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	// Map iteration order is random, so repeat enough times that the
	// expired holder is visited first at least once.
	for i := 0; i < 50; i++ {
		expired := newTestAccount("stale@example.com")
		expired.Verification = &entity.PendingSecret{
			Value:     "123456",
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		_, err := repo.Create(ctx, expired)
		require.NoError(t, err)

		live := newTestAccount("fresh@example.com")
		live.Verification = &entity.PendingSecret{
			Value:     "123456",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		created, err := repo.Create(ctx, live)
		require.NoError(t, err)

		consumed, err := repo.ConsumeVerificationCode(ctx, "123456")
		require.NoError(t, err)
		assert.Equal(t, created.ID, consumed.ID)
		assert.True(t, consumed.IsVerified)

		repo = NewAccountRepository()
	}
}

func TestAccountRepository_ConsumeResetTokenExpiredDoesNotShadowLive(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		expired := newTestAccount("stale@example.com")
		expired.PasswordReset = &entity.PendingSecret{
			Value:     "deadbeef",
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		_, err := repo.Create(ctx, expired)
		require.NoError(t, err)

		live := newTestAccount("fresh@example.com")
		live.PasswordReset = &entity.PendingSecret{
			Value:     "deadbeef",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		created, err := repo.Create(ctx, live)
		require.NoError(t, err)

		consumed, err := repo.ConsumeResetToken(ctx, "deadbeef", "new-hash")
		require.NoError(t, err)
		assert.Equal(t, created.ID, consumed.ID)
		assert.Equal(t, "new-hash", consumed.PasswordHash)

		repo = NewAccountRepository()
	}
}

func TestAccountRepository_ConsumeResetToken(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	account := newTestAccount("a@example.com")
	account.PasswordReset = &entity.PendingSecret{
		Value:     "deadbeef",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	_, err := repo.Create(ctx, account)
	require.NoError(t, err)

	consumed, err := repo.ConsumeResetToken(ctx, "deadbeef", "new-hash")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", consumed.PasswordHash)
	assert.Nil(t, consumed.PasswordReset)

	_, err = repo.ConsumeResetToken(ctx, "deadbeef", "other-hash")
	assert.ErrorIs(t, err, repository.ErrSecretNotFound)
}

func TestAccountRepository_ConsumeResetTokenConcurrent(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	account := newTestAccount("a@example.com")
	account.PasswordReset = &entity.PendingSecret{
		Value:     "deadbeef",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	_, err := repo.Create(ctx, account)
	require.NoError(t, err)

	const attempts = 32

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ConsumeResetToken(ctx, "deadbeef", "new-hash")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, repository.ErrSecretNotFound)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent reset may win")
}

func TestAccountRepository_UpdateClearsSecrets(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	account := newTestAccount("a@example.com")
	account.Verification = &entity.PendingSecret{
		Value:     "123456",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	created, err := repo.Create(ctx, account)
	require.NoError(t, err)

	created.Verification = nil
	created.IsVerified = true
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Nil(t, updated.Verification)
	assert.True(t, updated.IsVerified)
}

func TestTransactionManager_Execute(t *testing.T) {
	accounts := NewAccountRepository()
	tm := NewTransactionManager(accounts)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		_, err := f.AccountRepo().Create(ctx, newTestAccount("a@example.com"))

		return err
	})
	require.NoError(t, err)

	_, err = accounts.FindByEmail(ctx, "a@example.com")
	assert.NoError(t, err)
}
