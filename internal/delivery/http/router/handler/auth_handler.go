// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/DARSHAN2224/authentication/internal/delivery/http/middleware"
	"github.com/DARSHAN2224/authentication/internal/delivery/http/response"
	domainerrors "github.com/DARSHAN2224/authentication/internal/domain/errors"
	"github.com/DARSHAN2224/authentication/internal/domain/service"
	"github.com/DARSHAN2224/authentication/internal/usecase"
)

// AuthHandler holds dependencies for the credential and session endpoints.
type AuthHandler struct {
	uc       usecase.CredentialUsecase
	sessions service.SessionTokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.CredentialUsecase, sessions service.SessionTokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		sessions: sessions,
		logger:   logger,
	}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyEmailRequest struct {
	Code string `json:"code" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// Signup handles the registration request. A successful signup also starts a
// session, so the client is logged in before the email is verified.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "signup payload failed validation")
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)

	return response.Success(c, http.StatusCreated, map[string]any{"user": output.Account}, "User successfully created")
}

// VerifyEmail consumes the emailed verification code.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "verification payload failed validation")
	}

	output, err := h.uc.VerifyEmail(c.Request().Context(), usecase.VerifyEmailInput{Code: req.Code})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": output.Account}, "Email successfully verified")
}

// Login handles the login request and starts a session on success.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "login payload failed validation")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)

	return response.Success(c, http.StatusOK, map[string]any{"user": output.Account}, "User successfully logged in")
}

// Logout clears the session cookie. It succeeds whether or not a session
// exists, so repeating it is harmless.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "User successfully logged out")
}

// ForgotPassword issues a reset token and emails the reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "email payload failed validation")
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), usecase.RequestPasswordResetInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reset token successfully sent to user email address")
}

// ResetPassword consumes the reset token from the emailed link and replaces
// the account's password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, "password payload failed validation")
	}

	err := h.uc.CompletePasswordReset(c.Request().Context(), usecase.CompletePasswordResetInput{
		Token:       c.Param("token"),
		NewPassword: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User password successfully reset")
}

// CheckAuth returns the profile bound to the authenticated session. The auth
// middleware has already validated the cookie and stored the account ID.
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	accountID, ok := c.Get(middleware.KeyAccountID).(uuid.UUID)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "account id missing from context")
	}

	profile, err := h.uc.WhoAmI(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": profile}, "")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.SessionDuration().Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
