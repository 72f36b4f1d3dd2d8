package service

// SecretGenerator produces the ephemeral secrets used by the credential flows.
// Implementations must draw from a cryptographically secure random source;
// no two calls may produce values correlated in any way that aids prediction.
type SecretGenerator interface {
	// VerificationCode returns a fixed-length numeric code suitable for a
	// human to type from an email.
	VerificationCode() (string, error)

	// ResetToken returns a long random hex string used only as an opaque
	// lookup key in password-reset links.
	ResetToken() (string, error)
}
