package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/portfolio/internal/config"
	"github.com/wneessen/go-mail"
)

var ErrMailNotConfigured = errors.New("SMTP environment variables are not fully configured")

const smtpTimeout = 10 * time.Second

// Message is a plain-text notification sent to the site owner.
type Message struct {
	Subject string
	Body    string
	ReplyTo string
}

// Mailer delivers notification messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends messages through the configured SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer returns a mailer for cfg. Configuration is checked on every
// send so a server can start without SMTP settings.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send builds the message and delivers it synchronously.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if !m.cfg.Configured() {
		return ErrMailNotConfigured
	}

	out, err := m.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (m *SMTPMailer) buildMessage(msg Message) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(m.cfg.MailFrom); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := out.To(m.cfg.MailTo); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := out.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Body)
	return out, nil
}

// transportSecurity is the TLS and auth setup used for one relay port.
type transportSecurity struct {
	policy mail.TLSPolicy
	ssl    bool
	auth   mail.SMTPAuthType
}

// securityFor picks the transport for port. Submission (587) must upgrade
// with STARTTLS and 465 uses implicit TLS. Any other port upgrades when the
// relay offers STARTTLS and otherwise authenticates in the clear.
func securityFor(port int) transportSecurity {
	switch port {
	case 587:
		return transportSecurity{policy: mail.TLSMandatory, auth: mail.SMTPAuthPlain}
	case 465:
		return transportSecurity{policy: mail.TLSMandatory, ssl: true, auth: mail.SMTPAuthPlain}
	default:
		return transportSecurity{policy: mail.TLSOpportunistic, auth: mail.SMTPAuthPlainNoEnc}
	}
}

func (m *SMTPMailer) clientOptions() []mail.Option {
	sec := securityFor(m.cfg.Port)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTimeout(smtpTimeout),
		mail.WithSMTPAuth(sec.auth),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	}
	if sec.ssl {
		return append(opts, mail.WithSSL())
	}
	return append(opts, mail.WithTLSPolicy(sec.policy))
}
