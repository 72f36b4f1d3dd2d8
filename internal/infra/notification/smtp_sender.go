// Package notification contains the outbound email implementation of the
// NotificationSender domain service.
package notification

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"github.com/DARSHAN2224/authentication/config"
	"github.com/DARSHAN2224/authentication/internal/domain/service"
)

// smtpSender delivers transactional mail over SMTP. Each send dials a fresh
// connection; the credential flows only ever send one message per request.
type smtpSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config) (service.NotificationSender, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}

	return &smtpSender{
		dialer:   gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:     cfg.SMTP.From,
		fromName: cfg.SMTP.FromName,
	}, nil
}

func (s *smtpSender) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context done before sending mail")
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.from, s.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "failed to send %q mail", subject)
	}

	return nil
}

// SendVerification emails the verification code to a newly registered account.
func (s *smtpSender) SendVerification(ctx context.Context, name, email, code string) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your verification code is <b>%s</b>. It expires in 24 hours.</p>",
		name, code,
	)

	return s.send(ctx, email, "Verify your email", body)
}

// SendWelcome emails the post-verification welcome message.
func (s *smtpSender) SendWelcome(ctx context.Context, name, email string) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your email address has been verified. Welcome aboard!</p>",
		name,
	)

	return s.send(ctx, email, "Welcome", body)
}

// SendResetLink emails the password-reset link containing the reset token.
func (s *smtpSender) SendResetLink(ctx context.Context, name, email, resetURL string) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Click <a href=%q>here</a> to reset your password. The link expires in 1 hour.</p>"+
			"<p>If you did not request a reset, you can ignore this email.</p>",
		name, resetURL,
	)

	return s.send(ctx, email, "Reset your password", body)
}

// SendResetSuccess emails the confirmation after a completed password reset.
func (s *smtpSender) SendResetSuccess(ctx context.Context, name, email string) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your password has been changed successfully.</p>",
		name,
	)

	return s.send(ctx, email, "Password reset successful", body)
}
