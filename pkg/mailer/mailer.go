package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/traveltours/traveltours-api/pkg/logger"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message is the notification payload handed to the transport.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	Body     string
	ReplyTo  string
}

// Mailer defines an interface for delivering outbound notifications.
// This allows for easy mocking and testing of the send path.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// Config holds SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPMailer delivers messages over SMTP via gomail.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	timeout time.Duration
}

// NewSMTPMailer creates an SMTP-backed mailer.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		timeout: timeout,
	}
}

// Send delivers a single message. gomail has no context support, so the
// dial-and-send runs in a goroutine and the call is abandoned once the
// context or the configured timeout expires; the SMTP connection is
// per-send, nothing is held between calls.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", msg.From, msg.FromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetBody("text/plain", msg.Body)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(gm)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	}
}

// LogMailer is a development fallback that logs the message instead of
// sending it. Used when no SMTP host is configured outside production.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg *Message) error {
	logger.Info("Mail send skipped (no SMTP transport configured)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
