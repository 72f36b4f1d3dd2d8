// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"github.com/DARSHAN2224/authentication/internal/domain/service"
)

const (
	// verificationCodeMin keeps codes at exactly six digits.
	verificationCodeMin  = 100000
	verificationCodeSpan = 900000

	// resetTokenBytes gives 160 bits of entropy, hex-encoded to 40 characters.
	resetTokenBytes = 20
)

// randomSecretGenerator draws every secret from crypto/rand. It holds no state
// between calls.
type randomSecretGenerator struct{}

// NewSecretGenerator is the constructor for randomSecretGenerator.
func NewSecretGenerator() service.SecretGenerator {
	return &randomSecretGenerator{}
}

// VerificationCode returns a six-digit code in [100000, 999999].
func (g *randomSecretGenerator) VerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(verificationCodeSpan))
	if err != nil {
		return "", errors.Wrap(err, "failed to draw verification code")
	}

	return strconv.FormatInt(n.Int64()+verificationCodeMin, 10), nil
}

// ResetToken returns a 40-character hex string backed by 20 random bytes.
func (g *randomSecretGenerator) ResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to draw reset token")
	}

	return hex.EncodeToString(buf), nil
}
