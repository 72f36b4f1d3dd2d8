// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/DARSHAN2224/authentication/internal/domain/entity"
)

// AccountModel mirrors the 'accounts' table. The two ephemeral secrets are
// stored as nullable column pairs; a NULL value means no secret is pending.
type AccountModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email                 string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	PasswordHash          string    `gorm:"type:varchar(255);not null"`
	IsVerified            bool      `gorm:"not null;default:false"`
	VerificationCode      *string   `gorm:"type:varchar(16);index"`
	VerificationExpiresAt *time.Time
	ResetToken            *string `gorm:"type:varchar(64);index"`
	ResetExpiresAt        *time.Time
	LastLoginAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model into the domain entity.
func (m *AccountModel) ToDomain() *entity.Account {
	account := &entity.Account{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		IsVerified:   m.IsVerified,
		LastLoginAt:  m.LastLoginAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if m.VerificationCode != nil && m.VerificationExpiresAt != nil {
		account.Verification = &entity.PendingSecret{
			Value:     *m.VerificationCode,
			ExpiresAt: *m.VerificationExpiresAt,
		}
	}
	if m.ResetToken != nil && m.ResetExpiresAt != nil {
		account.PasswordReset = &entity.PendingSecret{
			Value:     *m.ResetToken,
			ExpiresAt: *m.ResetExpiresAt,
		}
	}

	return account
}

// FromAccountDomain converts the domain entity into the persistence model.
func FromAccountDomain(account *entity.Account) *AccountModel {
	m := &AccountModel{
		ID:           account.ID,
		Email:        account.Email,
		Name:         account.Name,
		PasswordHash: account.PasswordHash,
		IsVerified:   account.IsVerified,
		LastLoginAt:  account.LastLoginAt,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}

	if account.Verification != nil {
		code := account.Verification.Value
		expiresAt := account.Verification.ExpiresAt
		m.VerificationCode = &code
		m.VerificationExpiresAt = &expiresAt
	}
	if account.PasswordReset != nil {
		token := account.PasswordReset.Value
		expiresAt := account.PasswordReset.ExpiresAt
		m.ResetToken = &token
		m.ResetExpiresAt = &expiresAt
	}

	return m
}
