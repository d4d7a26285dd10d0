package notifications

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/you/currencysvc/domain"
)

// SMTPServiceImpl implements domain.NotificationService over a credentialed,
// TLS-secured SMTP connection.
type SMTPServiceImpl struct {
	host        string
	port        int
	username    string
	password    string
	from        string
	dialTimeout time.Duration
}

// NewSMTPService creates a new SMTP notification service
func NewSMTPService(host string, port int, username, password, from string) domain.NotificationService {
	return &SMTPServiceImpl{
		host:        host,
		port:        port,
		username:    username,
		password:    password,
		from:        from,
		dialTimeout: 10 * time.Second,
	}
}

// SendEmail implements domain.NotificationService
func (s *SMTPServiceImpl) SendEmail(to, subject, htmlBody string) error {
	// If the transport is not configured, log instead of sending
	if s.host == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, htmlBody)
		return nil
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	dialer := &net.Dialer{Timeout: s.dialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return fmt.Errorf("failed to dial smtp server: %w", err)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	defer client.Close()

	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("smtp mail from failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data failed: %w", err)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s",
		s.from, to, subject, htmlBody)
	if _, err := w.Write([]byte(msg)); err != nil {
		w.Close()
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish email body: %w", err)
	}

	return client.Quit()
}
