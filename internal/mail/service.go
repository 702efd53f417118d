// Package mail renders a summary into a fixed HTML message and submits it
// once over SMTP. No retry state is kept: a failed submission is reported to
// the caller, who decides whether to resend.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"gopkg.in/gomail.v2"

	"summaryapi/internal/config"
)

const defaultSubject = "Meeting Summary"

var (
	// ErrNotConfigured is returned when mail credentials are missing or
	// still set to their placeholder values.
	ErrNotConfigured = errors.New("email credentials not configured: please set EMAIL_USER and EMAIL_PASS in your .env file")

	// ErrEmptySummary and ErrNoRecipients reject incomplete requests before
	// any message is built.
	ErrEmptySummary = errors.New("summary is required")
	ErrNoRecipients = errors.New("recipients are required")

	// ErrAuth and ErrConnection classify SMTP submission failures.
	ErrAuth       = errors.New("email authentication failed")
	ErrConnection = errors.New("failed to connect to email server")
)

// Sender submits one rendered message. It exists so tests can capture the
// message instead of talking to an SMTP server.
type Sender interface {
	Send(m *gomail.Message) error
}

type smtpSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSender returns a Sender that dials the configured SMTP host for
// each submission.
func NewSMTPSender(cfg config.MailConfig) Sender {
	return &smtpSender{dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)}
}

func (s *smtpSender) Send(m *gomail.Message) error {
	return s.dialer.DialAndSend(m)
}

// Service shares summaries with a recipient list.
type Service interface {
	// Share renders the summary into the fixed HTML template and submits a
	// single message addressed to all recipients. All recipients share one
	// To header and can see each other's addresses.
	Share(ctx context.Context, summary string, recipients []string, subject string) error
}

type service struct {
	sender Sender
	cfg    config.MailConfig
}

// NewService constructs the notification dispatch service.
func NewService(sender Sender, cfg config.MailConfig) Service {
	return &service{sender: sender, cfg: cfg}
}

func (s *service) Share(_ context.Context, summary string, recipients []string, subject string) error {
	if !s.cfg.Configured() {
		return ErrNotConfigured
	}
	if strings.TrimSpace(summary) == "" {
		return ErrEmptySummary
	}
	if len(recipients) == 0 {
		return ErrNoRecipients
	}
	if subject == "" {
		subject = defaultSubject
	}

	html, err := renderHTML(summary)
	if err != nil {
		return fmt.Errorf("render message: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Username)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	if err := s.sender.Send(m); err != nil {
		return classifySendError(err)
	}
	return nil
}

// classifySendError maps SMTP failures onto sentinel errors. Gmail rejects
// bad credentials with a 535 reply; anything that fails at the network layer
// is a connection problem.
func classifySendError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "535") || strings.Contains(msg, "username and password not accepted") || strings.Contains(msg, "authentication"):
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") || strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %v", ErrConnection, err)
	default:
		// Unrecognized failures pass through unchanged; the HTTP layer
		// prefixes the user-facing message.
		return err
	}
}
