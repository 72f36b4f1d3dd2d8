package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DARSHAN2224/authentication/config"
	httpmiddleware "github.com/DARSHAN2224/authentication/internal/delivery/http/middleware"
	"github.com/DARSHAN2224/authentication/internal/delivery/http/validator"
	"github.com/DARSHAN2224/authentication/internal/infra/auth"
	"github.com/DARSHAN2224/authentication/internal/infra/persistence/memory"
	mockSvc "github.com/DARSHAN2224/authentication/internal/mocks/service"
	"github.com/DARSHAN2224/authentication/internal/usecase/impl"
)

// authTestEnv wires the handler against the real usecase, the in-memory store
// and real token/hash services. Only the mail sender is mocked, so tests can
// capture the secrets it would have emailed.
type authTestEnv struct {
	echo     *echo.Echo
	notifier *mockSvc.MockNotificationSender
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      4, // bcrypt.MinCost keeps the tests fast
			SessionTTL:      time.Hour,
			VerificationTTL: 24 * time.Hour,
			ResetTTL:        time.Hour,
		},
		ClientURL: "https://app.example.com",
	}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	sessions, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accounts := memory.NewAccountRepository()
	notifier := mockSvc.NewMockNotificationSender(t)

	uc := impl.NewCredentialService(impl.CredentialServiceParams{
		TxManager:   memory.NewTransactionManager(accounts),
		AccountRepo: accounts,
		Hasher:      auth.NewBcryptHasherWithCost(4),
		Secrets:     auth.NewSecretGenerator(),
		Sessions:    sessions,
		Notifier:    notifier,
		Config:      cfg,
		Logger:      logger,
	})

	h := NewAuthHandler(uc, sessions, logger)
	authMw := httpmiddleware.NewAuthMiddleware(sessions)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/auth/signup", h.Signup)
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/logout", h.Logout)
	e.POST("/api/auth/verify-email", h.VerifyEmail)
	e.POST("/api/auth/forgot-password", h.ForgotPassword)
	e.POST("/api/auth/reset-password/:token", h.ResetPassword)
	e.GET("/api/auth/check-auth", h.CheckAuth, authMw.Authenticate)

	return &authTestEnv{echo: e, notifier: notifier}
}

func (env *authTestEnv) request(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == httpmiddleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")

	return nil
}

func TestAuthHandler_SignupFlow(t *testing.T) {
	env := newAuthTestEnv(t)

	var emailedCode string
	env.notifier.EXPECT().
		SendVerification(mock.Anything, "Test Person", "test@example.com", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _, _, code string) {
			emailedCode = code
		}).
		Return(nil)

	rec := env.request(http.MethodPost, "/api/auth/signup",
		`{"name":"Test Person","email":"test@example.com","password":"Password123!"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "User successfully created")
	assert.Len(t, emailedCode, 6)

	cookie := sessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// The response never carries the hash or any pending secret.
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.NotContains(t, rec.Body.String(), emailedCode)

	// Verify with the emailed code.
	env.notifier.EXPECT().
		SendWelcome(mock.Anything, "Test Person", "test@example.com").
		Return(nil)

	rec = env.request(http.MethodPost, "/api/auth/verify-email", `{"code":"`+emailedCode+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Email successfully verified")
	assert.Contains(t, rec.Body.String(), `"isVerified":true`)

	// The code is single use.
	rec = env.request(http.MethodPost, "/api/auth/verify-email", `{"code":"`+emailedCode+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired verification code")
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	env := newAuthTestEnv(t)

	env.notifier.EXPECT().
		SendVerification(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	rec := env.request(http.MethodPost, "/api/auth/signup",
		`{"name":"Test Person","email":"taken@example.com","password":"Password123!"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(http.MethodPost, "/api/auth/signup",
		`{"name":"Someone Else","email":"taken@example.com","password":"Other123!"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	env := newAuthTestEnv(t)

	rec := env.request(http.MethodPost, "/api/auth/signup", `{"email":"test@example.com"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please provide all the required fields")
}

func TestAuthHandler_LoginAndCheckAuth(t *testing.T) {
	env := newAuthTestEnv(t)

	env.notifier.EXPECT().
		SendVerification(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	rec := env.request(http.MethodPost, "/api/auth/signup",
		`{"name":"Test Person","email":"test@example.com","password":"Password123!"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(http.MethodPost, "/api/auth/login",
		`{"email":"test@example.com","password":"Password123!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "User successfully logged in")
	assert.Contains(t, rec.Body.String(), "lastLoginAt")
	cookie := sessionCookie(t, rec)

	rec = env.request(http.MethodGet, "/api/auth/check-auth", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "test@example.com")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := newAuthTestEnv(t)

	env.notifier.EXPECT().
		SendVerification(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	rec := env.request(http.MethodPost, "/api/auth/signup",
		`{"name":"Test Person","email":"test@example.com","password":"Password123!"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(http.MethodPost, "/api/auth/login",
		`{"email":"test@example.com","password":"wrong-password"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")

	// Unknown email reads exactly the same.
	rec = env.request(http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"wrong-password"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestAuthHandler_CheckAuth_NoCookie(t *testing.T) {
	env := newAuthTestEnv(t)

	rec := env.request(http.MethodGet, "/api/auth/check-auth", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized access")
}

func TestAuthHandler_Logout(t *testing.T) {
	env := newAuthTestEnv(t)

	rec := env.request(http.MethodPost, "/api/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User successfully logged out")

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)

	// Logging out again is still a success.
	rec = env.request(http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_PasswordResetFlow(t *testing.T) {
	env := newAuthTestEnv(t)

	env.notifier.EXPECT().
		SendVerification(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	rec := env.request(http.MethodPost, "/api/auth/signup",
		`{"name":"Test Person","email":"test@example.com","password":"Password123!"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resetURL string
	env.notifier.EXPECT().
		SendResetLink(mock.Anything, "Test Person", "test@example.com", mock.AnythingOfType("string")).
		Run(func(_ context.Context, _, _, url string) {
			resetURL = url
		}).
		Return(nil)

	rec = env.request(http.MethodPost, "/api/auth/forgot-password", `{"email":"test@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Reset token successfully sent to user email address")
	require.Contains(t, resetURL, "https://app.example.com/reset-password/")

	token := strings.TrimPrefix(resetURL, "https://app.example.com/reset-password/")

	env.notifier.EXPECT().
		SendResetSuccess(mock.Anything, "Test Person", "test@example.com").
		Return(nil)

	rec = env.request(http.MethodPost, "/api/auth/reset-password/"+token, `{"password":"NewPassword123!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "User password successfully reset")

	// The old password no longer works, the new one does.
	rec = env.request(http.MethodPost, "/api/auth/login",
		`{"email":"test@example.com","password":"Password123!"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(http.MethodPost, "/api/auth/login",
		`{"email":"test@example.com","password":"NewPassword123!"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The reset link is single use.
	rec = env.request(http.MethodPost, "/api/auth/reset-password/"+token, `{"password":"Another123!"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired reset token")
}

func TestAuthHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	env := newAuthTestEnv(t)

	rec := env.request(http.MethodPost, "/api/auth/forgot-password", `{"email":"nobody@example.com"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid email", envelope.Message)
}
