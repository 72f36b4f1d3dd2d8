// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/DARSHAN2224/authentication/config"
	deliverycontext "github.com/DARSHAN2224/authentication/internal/delivery/context"
	"github.com/DARSHAN2224/authentication/internal/domain/entity"
	domainerrors "github.com/DARSHAN2224/authentication/internal/domain/errors"
	"github.com/DARSHAN2224/authentication/internal/domain/repository"
	"github.com/DARSHAN2224/authentication/internal/domain/service"
	"github.com/DARSHAN2224/authentication/internal/usecase"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	txManager       repository.TransactionManager
	accountRepo     repository.AccountRepository
	hasher          service.PasswordHasher
	secrets         service.SecretGenerator
	sessions        service.SessionTokenService
	notifier        service.NotificationSender
	verificationTTL time.Duration
	resetTTL        time.Duration
	clientURL       string
	logger          *slog.Logger
}

// CredentialServiceParams holds dependencies for credentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Secrets     service.SecretGenerator
	Sessions    service.SessionTokenService
	Notifier    service.NotificationSender
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCredentialService is the constructor for credentialService. It receives
// all dependencies as interfaces.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	var verificationTTL, resetTTL time.Duration
	var clientURL string
	if params.Config != nil {
		clientURL = params.Config.ClientURL
		if params.Config.Auth != nil {
			verificationTTL = params.Config.Auth.VerificationTTL
			resetTTL = params.Config.Auth.ResetTTL
		}
	}

	return &credentialService{
		txManager:       params.TxManager,
		accountRepo:     params.AccountRepo,
		hasher:          params.Hasher,
		secrets:         params.Secrets,
		sessions:        params.Sessions,
		notifier:        params.Notifier,
		verificationTTL: verificationTTL,
		resetTTL:        resetTTL,
		clientURL:       clientURL,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unverified account, mails it a verification code, and
// logs it in by minting a session token.
func (srv *credentialService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "registration requires name, email and password")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	code, err := srv.secrets.VerificationCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	var registered *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrAccountAlreadyExists
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		account := &entity.Account{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: passwordHash,
			Verification: &entity.PendingSecret{
				Value:     code,
				ExpiresAt: time.Now().Add(srv.verificationTTL),
			},
		}

		registered, err = accountRepo.Create(ctx, account)
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return domainerrors.ErrAccountAlreadyExists
		}
		if err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	sessionToken, err := srv.sessions.Mint(registered.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint session token")
	}

	if err := srv.notifier.SendVerification(ctx, registered.Name, registered.Email, code); err != nil {
		srv.log(ctx).Warn("Failed to send verification email", slog.Any("accountID", registered.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", registered.ID))

	return &usecase.RegisterOutput{
		Account:      registered.Profile(),
		SessionToken: sessionToken,
	}, nil
}

// VerifyEmail consumes a live verification code. The repository performs the
// match-and-clear atomically, so a code can verify at most one account once.
func (srv *credentialService) VerifyEmail(ctx context.Context, input usecase.VerifyEmailInput) (*usecase.VerifyEmailOutput, error) {
	if input.Code == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "verification code is required")
	}

	account, err := srv.accountRepo.ConsumeVerificationCode(ctx, input.Code)
	if errors.Is(err, repository.ErrSecretNotFound) {
		return nil, errors.Wrap(domainerrors.ErrInvalidVerificationCode, "no account holds this code")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume verification code")
	}

	if err := srv.notifier.SendWelcome(ctx, account.Name, account.Email); err != nil {
		srv.log(ctx).Warn("Failed to send welcome email", slog.Any("accountID", account.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Email verified", slog.Any("accountID", account.ID))

	return &usecase.VerifyEmailOutput{Account: account.Profile()}, nil
}

// Login authenticates an email/password pair. An unknown email and a wrong
// password produce the same error so callers cannot probe which emails exist.
func (srv *credentialService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "login requires email and password")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	now := time.Now()
	account.LastLoginAt = &now
	updated, err := srv.accountRepo.Update(ctx, account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to record login time")
	}

	sessionToken, err := srv.sessions.Mint(updated.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint session token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("accountID", updated.ID))

	return &usecase.LoginOutput{
		Account:      updated.Profile(),
		SessionToken: sessionToken,
	}, nil
}

// RequestPasswordReset issues a fresh reset token for the account and mails
// the reset link. Issuing again overwrites any earlier pending token.
//
// TODO: return success for unknown emails as well, so this endpoint stops
// confirming which addresses have accounts. Requires coordinating with the
// frontend, which currently shows an "email not found" message.
func (srv *credentialService) RequestPasswordReset(ctx context.Context, input usecase.RequestPasswordResetInput) error {
	if input.Email == "" {
		return errors.Wrap(domainerrors.ErrInvalidInput, "email is required")
	}

	token, err := srv.secrets.ResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	var account *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByEmail(ctx, input.Email)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrUnknownEmail
		}
		if err != nil {
			return errors.Wrap(err, "failed to find account by email")
		}

		found.PasswordReset = &entity.PendingSecret{
			Value:     token,
			ExpiresAt: time.Now().Add(srv.resetTTL),
		}

		account, err = accountRepo.Update(ctx, found)
		if err != nil {
			return errors.Wrap(err, "failed to store reset token")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset request")
	}

	resetURL := srv.resetURL(token)
	if err := srv.notifier.SendResetLink(ctx, account.Name, account.Email, resetURL); err != nil {
		srv.log(ctx).Warn("Failed to send reset link email", slog.Any("accountID", account.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Password reset requested", slog.Any("accountID", account.ID))

	return nil
}

// CompletePasswordReset consumes a live reset token and replaces the
// account's password, so the emailed link works exactly once.
func (srv *credentialService) CompletePasswordReset(ctx context.Context, input usecase.CompletePasswordResetInput) error {
	if input.Token == "" || input.NewPassword == "" {
		return errors.Wrap(domainerrors.ErrInvalidInput, "reset token and new password are required")
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	account, err := srv.accountRepo.ConsumeResetToken(ctx, input.Token, passwordHash)
	if errors.Is(err, repository.ErrSecretNotFound) {
		return errors.Wrap(domainerrors.ErrInvalidResetToken, "no account holds this token")
	}
	if err != nil {
		return errors.Wrap(err, "failed to consume reset token")
	}

	if err := srv.notifier.SendResetSuccess(ctx, account.Name, account.Email); err != nil {
		srv.log(ctx).Warn("Failed to send reset confirmation email", slog.Any("accountID", account.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("accountID", account.ID))

	return nil
}

// WhoAmI resolves a validated session's account ID to its visible profile.
func (srv *credentialService) WhoAmI(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "session refers to a missing account")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account.Profile(), nil
}

// resetURL builds the link embedded in the reset email.
func (srv *credentialService) resetURL(token string) string {
	base := strings.TrimRight(srv.clientURL, "/")

	return fmt.Sprintf("%s/reset-password/%s", base, token)
}
