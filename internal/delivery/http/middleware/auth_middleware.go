package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "github.com/DARSHAN2224/authentication/internal/domain/errors"
	"github.com/DARSHAN2224/authentication/internal/domain/service"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "token"

	// KeyAccountID is the echo.Context key holding the authenticated account ID.
	KeyAccountID = "accountID"
)

// AuthMiddleware guards routes that require an authenticated session.
type AuthMiddleware struct {
	sessions service.SessionTokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionTokenService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate validates the session cookie and stores the account ID on the
// context. A missing cookie, a tampered token and an expired token all produce
// the same Unauthenticated error.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "session cookie missing")
		}

		accountID, err := m.sessions.Validate(cookie.Value)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(KeyAccountID, accountID)

		return next(c)
	}
}
