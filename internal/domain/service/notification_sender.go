package service

import "context"

// NotificationSender delivers the transactional emails triggered by credential
// operations. Calls are fire-and-forget from the caller's point of view: a
// delivery failure is logged by the caller and never rolls back the state
// change that triggered it.
type NotificationSender interface {
	// SendVerification emails the verification code to a newly registered account.
	SendVerification(ctx context.Context, name, email, code string) error

	// SendWelcome emails the post-verification welcome message.
	SendWelcome(ctx context.Context, name, email string) error

	// SendResetLink emails the password-reset link containing the reset token.
	SendResetLink(ctx context.Context, name, email, resetURL string) error

	// SendResetSuccess emails the confirmation after a completed password reset.
	SendResetSuccess(ctx context.Context, name, email string) error
}
