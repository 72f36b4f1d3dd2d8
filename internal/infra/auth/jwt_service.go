// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/DARSHAN2224/authentication/config"
	domainerrors "github.com/DARSHAN2224/authentication/internal/domain/errors"
	"github.com/DARSHAN2224/authentication/internal/domain/service"
)

// jwtService is a concrete implementation of the SessionTokenService interface
// using the JWT standard with an HMAC signature.
type jwtService struct {
	secret     string        // Server-held key for signing session tokens.
	sessionTTL time.Duration // Absolute lifetime of a minted token.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session token secret must be provided")
	}

	sessionTTL := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		sessionTTL = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: sessionTTL,
	}, nil
}

// Mint creates a signed session token embedding the account ID and an absolute expiry.
func (s *jwtService) Mint(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate verifies signature and expiry and returns the embedded account ID.
// Tampering, a wrong signature, a malformed token and expiry all collapse into
// the single Unauthenticated error; the reason stays out of the return value.
func (s *jwtService) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session token rejected")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session token rejected")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session token rejected")
	}

	return accountID, nil
}

// SessionDuration returns the configured lifetime of minted tokens.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}
