package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DARSHAN2224/authentication/internal/domain/entity"
	domainerrors "github.com/DARSHAN2224/authentication/internal/domain/errors"
	"github.com/DARSHAN2224/authentication/internal/domain/repository"
	mockRepo "github.com/DARSHAN2224/authentication/internal/mocks/repository"
	"github.com/DARSHAN2224/authentication/internal/usecase"
)

func TestCredentialService_Register_MissingFields(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	cases := []usecase.RegisterInput{
		{Email: "test@example.com", Password: "Password123!"},
		{Name: "Test Person", Password: "Password123!"},
		{Name: "Test Person", Email: "test@example.com"},
	}

	for _, input := range cases {
		output, err := fx.service.Register(ctx, input)

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	}
}

func TestCredentialService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test Person",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.secrets.EXPECT().VerificationCode().Return("123456", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestCredentialService_Register_DuplicateEmailRace(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Test Person",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.secrets.EXPECT().VerificationCode().Return("123456", nil)

	// The email check passes but a concurrent registration wins the insert.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Return(nil, repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestCredentialService_VerifyEmail_InvalidCode(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		ConsumeVerificationCode(ctx, "000000").
		Return(nil, repository.ErrSecretNotFound)

	output, err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{Code: "000000"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidVerificationCode)
}

func TestCredentialService_VerifyEmail_EmptyCode(t *testing.T) {
	fx := createTestCredentialService(t)

	output, err := fx.service.VerifyEmail(context.Background(), usecase.VerifyEmailInput{})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCredentialService_Login_UnknownEmail(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestCredentialService_Login_WrongPassword(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, account.Email).
		Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    account.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// An unknown email and a wrong password must be indistinguishable to the
// caller, so login failures cannot be used to probe which emails exist.
func TestCredentialService_Login_FailureModesIndistinguishable(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "known@example.com",
		PasswordHash: "hashed_password",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "unknown@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, account.Email).
		Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{Email: "unknown@example.com", Password: "wrong"})
	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{Email: account.Email, Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	var unknownApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongErr, &wrongApp)
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
}

func TestCredentialService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	fx.secrets.EXPECT().ResetToken().Return("a1b2c3d4", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, "nobody@example.com").
				Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	err := fx.service.RequestPasswordReset(ctx, usecase.RequestPasswordResetInput{Email: "nobody@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownEmail)
}

func TestCredentialService_CompletePasswordReset_InvalidToken(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)
	fx.accountRepo.EXPECT().
		ConsumeResetToken(ctx, "expired", "new_hash").
		Return(nil, repository.ErrSecretNotFound)

	err := fx.service.CompletePasswordReset(ctx, usecase.CompletePasswordResetInput{
		Token:       "expired",
		NewPassword: "NewPassword123!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
}

func TestCredentialService_CompletePasswordReset_MissingFields(t *testing.T) {
	fx := createTestCredentialService(t)

	err := fx.service.CompletePasswordReset(context.Background(), usecase.CompletePasswordResetInput{Token: "a1b2c3d4"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCredentialService_WhoAmI_NotFound(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	accountID := uuid.New()
	fx.accountRepo.EXPECT().
		FindByID(ctx, accountID).
		Return(nil, repository.ErrAccountNotFound)

	profile, err := fx.service.WhoAmI(ctx, accountID)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCredentialService_Register_HashFailure(t *testing.T) {
	fx := createTestCredentialService(t)

	fx.hasher.EXPECT().Hash("Password123!").Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Test Person",
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
}
