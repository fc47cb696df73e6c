package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sumitlokhande/portfolio/pkg/logging"
)

// SMTPSender sends emails through a plain SMTP relay (Gmail app passwords,
// Ethereal test accounts and the like).
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	logger   *logging.Logger
}

// SMTPConfig holds configuration for the SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// NewSMTPSender creates a new SMTP email sender.
func NewSMTPSender(cfg SMTPConfig, logger *logging.Logger) *SMTPSender {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		logger:   logger,
	}
}

// Send sends an email via SMTP. net/smtp has no context support, so the
// dial runs in a goroutine and the context deadline aborts the wait.
func (s *SMTPSender) Send(ctx context.Context, msg EmailMessage) error {
	if s == nil || s.host == "" {
		return fmt.Errorf("notify: SMTP transport not configured")
	}

	raw := s.compose(msg)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.username, []string{msg.To}, raw)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Error("smtp send failed", "error", err, "to", msg.To, "host", s.host)
			return fmt.Errorf("notify: smtp send failed: %w", err)
		}
	case <-ctx.Done():
		s.logger.Error("smtp send timed out", "to", msg.To, "host", s.host)
		return fmt.Errorf("notify: smtp send aborted: %w", ctx.Err())
	}

	s.logger.Info("email sent via smtp", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (s *SMTPSender) compose(msg EmailMessage) []byte {
	var b strings.Builder
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("From: " + s.username + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	if msg.ReplyTo != "" {
		b.WriteString("Reply-To: " + msg.ReplyTo + "\r\n")
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	if msg.HTML != "" {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(msg.HTML)
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(msg.Body)
	}
	b.WriteString("\r\n")
	return []byte(b.String())
}

var _ EmailSender = (*SMTPSender)(nil)
