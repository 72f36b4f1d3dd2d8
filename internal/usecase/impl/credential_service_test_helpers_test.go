package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DARSHAN2224/authentication/config"
	mockRepo "github.com/DARSHAN2224/authentication/internal/mocks/repository"
	mockSvc "github.com/DARSHAN2224/authentication/internal/mocks/service"
	"github.com/DARSHAN2224/authentication/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      10,
			SessionTTL:      24 * time.Hour,
			VerificationTTL: 24 * time.Hour,
			ResetTTL:        time.Hour,
		},
		ClientURL: "https://app.example.com",
	}
}

type credentialServiceFixtures struct {
	service     usecase.CredentialUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	secrets     *mockSvc.MockSecretGenerator
	sessions    *mockSvc.MockSessionTokenService
	notifier    *mockSvc.MockNotificationSender
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	secrets := mockSvc.NewMockSecretGenerator(t)
	sessions := mockSvc.NewMockSessionTokenService(t)
	notifier := mockSvc.NewMockNotificationSender(t)

	service := NewCredentialService(CredentialServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Secrets:     secrets,
		Sessions:    sessions,
		Notifier:    notifier,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return credentialServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		secrets:     secrets,
		sessions:    sessions,
		notifier:    notifier,
	}
}
