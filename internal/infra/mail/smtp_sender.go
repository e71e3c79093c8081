// Package mail delivers account emails over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"github.com/pkg/errors"

	"organizer/config"
	"organizer/internal/domain/service"
)

// smtpSender implements service.EmailSender using an SMTP relay.
type smtpSender struct {
	client   *gomail.Client
	from     string
	fromName string
}

// NewEmailSender is the constructor for smtpSender.
func NewEmailSender(cfg *config.Config) (service.EmailSender, error) {
	mc := cfg.Mail
	if mc == nil {
		return nil, errors.New("mail config section is required")
	}

	opts := []gomail.Option{
		gomail.WithPort(mc.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(mc.Username),
		gomail.WithPassword(mc.Password),
	}
	if mc.SSL {
		opts = append(opts, gomail.WithSSL())
	}

	client, err := gomail.NewClient(mc.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpSender{
		client:   client,
		from:     mc.From,
		fromName: mc.FromName,
	}, nil
}

// SendConfirmation sends the email-confirmation message with the token link.
func (s *smtpSender) SendConfirmation(ctx context.Context, to, username, confirmURL string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}

	msg.Subject("Confirm your email")
	msg.SetBodyString(gomail.TypeTextHTML, fmt.Sprintf(
		"<p>Hi %s,</p><p>Please confirm your email address by following "+
			"<a href=%q>this link</a>. The link is valid for seven days.</p>",
		username, confirmURL,
	))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send confirmation email")
	}

	return nil
}
