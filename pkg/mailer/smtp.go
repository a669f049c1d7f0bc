package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"go-investment-backend/config"

	"github.com/google/uuid"
)

var (
	// ErrTransportUnavailable means the relay connection or authentication
	// could not be established; no send was attempted.
	ErrTransportUnavailable = errors.New("mail relay unavailable")
	// ErrDeliveryFailed means the relay accepted the session but rejected
	// or failed the message submission.
	ErrDeliveryFailed = errors.New("mail delivery failed")
)

// SMTP delivers messages over an implicit-TLS session (TLS from the first
// byte, not a STARTTLS upgrade). One fresh connection per call, a single
// attempt, no retry: failures surface straight to the caller, which is
// acceptable for a low-volume contact mailbox.
type SMTP struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       string
	timeout  time.Duration
}

// NewSMTP builds the dispatcher from the injected configuration
func NewSMTP(cfg *config.Config) *SMTP {
	return &SMTP{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFromEmail,
		to:       cfg.ContactEmailTo,
		timeout:  cfg.SMTPTimeout,
	}
}

// Verify checks the relay is reachable and the credentials are accepted
// before any delivery attempt
func (s *SMTP) Verify(ctx context.Context) error {
	client, err := s.connect(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
	}
	defer client.Quit()

	if err := client.Noop(); err != nil {
		return fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
	}
	return nil
}

// Send submits the message to the fixed operational mailbox and returns the
// generated message identifier
func (s *SMTP) Send(ctx context.Context, email *OutboundEmail) (string, error) {
	client, err := s.connect(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransportUnavailable, err)
	}
	defer client.Quit()

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)
	msg, err := email.encode(s.from, s.to, messageID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if err := client.Mail(s.from); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	if err := client.Rcpt(s.to); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	if _, err := w.Write(msg); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return messageID, nil
}

// connect dials the relay with implicit TLS and authenticates. The context
// deadline, capped by the configured timeout, bounds the whole session so a
// hung relay cannot hang the request.
func (s *SMTP) connect(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.host, s.port)
	dialer := &net.Dialer{Timeout: s.timeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
