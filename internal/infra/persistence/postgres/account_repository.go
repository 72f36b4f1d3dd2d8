package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DARSHAN2224/authentication/internal/domain/entity"
	"github.com/DARSHAN2224/authentication/internal/domain/repository"
	"github.com/DARSHAN2224/authentication/internal/infra/persistence/model"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface,
// adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account. A unique constraint violation on the email
// column is reported as repository.ErrDuplicateEmail.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	accountM := model.FromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateEmail
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	return accountM.ToDomain(), nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return accountM.ToDomain(), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return accountM.ToDomain(), nil
}

// Update persists the full state of an existing account, including clearing
// nullable secret columns when the corresponding domain field is nil.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	accountM := model.FromAccountDomain(account)

	// Select("*") forces GORM to write zero and NULL values instead of
	// skipping them, so cleared secrets actually reach the database.
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", accountM.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(accountM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrDuplicateEmail
		}

		return nil, errors.Wrap(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrAccountNotFound
	}

	return repo.FindByID(ctx, accountM.ID)
}

// ConsumeVerificationCode atomically marks the account holding a live
// verification code as verified and clears the code. The conditional UPDATE
// guarantees a given code can only be consumed once even under concurrent
// requests; an expired or unknown code yields repository.ErrSecretNotFound.
func (repo *accountRepository) ConsumeVerificationCode(ctx context.Context, code string) (*entity.Account, error) {
	var accounts []model.AccountModel
	result := repo.db.WithContext(ctx).
		Model(&accounts).
		Clauses(clause.Returning{}).
		Where("verification_code = ? AND verification_expires_at > ?", code, time.Now()).
		Updates(map[string]any{
			"is_verified":             true,
			"verification_code":       nil,
			"verification_expires_at": nil,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to consume verification code")
	}
	if result.RowsAffected == 0 || len(accounts) == 0 {
		return nil, repository.ErrSecretNotFound
	}

	return accounts[0].ToDomain(), nil
}

// ConsumeResetToken atomically replaces the password hash of the account
// holding a live reset token and clears the token, so a token can complete at
// most one reset. An expired or unknown token yields
// repository.ErrSecretNotFound.
func (repo *accountRepository) ConsumeResetToken(ctx context.Context, token string, newPasswordHash string) (*entity.Account, error) {
	var accounts []model.AccountModel
	result := repo.db.WithContext(ctx).
		Model(&accounts).
		Clauses(clause.Returning{}).
		Where("reset_token = ? AND reset_expires_at > ?", token, time.Now()).
		Updates(map[string]any{
			"password_hash":    newPasswordHash,
			"reset_token":      nil,
			"reset_expires_at": nil,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to consume reset token")
	}
	if result.RowsAffected == 0 || len(accounts) == 0 {
		return nil, repository.ErrSecretNotFound
	}

	return accounts[0].ToDomain(), nil
}
