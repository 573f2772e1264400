// internal/mailer/mailer.go

// Package mailer sends the site's outbound mail over SMTP. It wraps
// github.com/wneessen/go-mail; each send opens one short-lived authenticated
// connection, bounded by the configured timeout, and closes it on every exit
// path.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// Config holds SMTP server configuration.
type Config struct {
	// Host is the SMTP server hostname (e.g., "smtp.gmail.com")
	Host string

	// Port is the SMTP server port (465 for implicit SSL, 587 for STARTTLS)
	Port int

	// Username for SMTP authentication
	Username string

	// Password for SMTP authentication
	Password string

	// UseSSL enables implicit SSL/TLS from the first byte (for port 465)
	UseSSL bool

	// Timeout bounds the whole dial-auth-send round trip (default: 10 seconds)
	Timeout time.Duration
}

// Outbound is one message to deliver.
type Outbound struct {
	FromName string // sender display name (optional)
	From     string // sender address (must match the authenticated account)
	ReplyTo  string // visitor address, so replies go to the submitter (optional)
	To       string // recipient address
	Subject  string
	Body     string // plain text
}

// Dispatcher delivers outbound messages. Handlers depend on this interface so
// tests can substitute a recording stub.
type Dispatcher interface {
	Send(ctx context.Context, msg Outbound) error
}

// Sender is the SMTP-backed Dispatcher.
type Sender struct {
	cfg Config
}

// NewSender creates a Sender with the given configuration. Port 465 implies
// implicit SSL unless configured otherwise.
func NewSender(cfg Config) *Sender {
	if cfg.Port == 0 {
		cfg.Port = 465
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Port == 465 {
		cfg.UseSSL = true
	}
	return &Sender{cfg: cfg}
}

// Send delivers one message. Any failure (auth, network, protocol, timeout)
// comes back as an error; nothing is retried.
func (s *Sender) Send(ctx context.Context, msg Outbound) error {
	if msg.To == "" {
		return fmt.Errorf("mailer: no recipient specified")
	}
	if msg.Body == "" {
		return fmt.Errorf("mailer: message body is empty")
	}

	m := mail.NewMsg()

	if msg.FromName != "" {
		if err := m.FromFormat(msg.FromName, msg.From); err != nil {
			return fmt.Errorf("mailer: invalid from address: %w", err)
		}
	} else {
		if err := m.From(msg.From); err != nil {
			return fmt.Errorf("mailer: invalid from address: %w", err)
		}
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("mailer: invalid to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("mailer: invalid reply-to address: %w", err)
		}
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(s.cfg.Timeout),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	if s.cfg.UseSSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	c, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("mailer: failed to create client: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mailer: failed to send: %w", err)
	}

	return nil
}
