package sender

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"
)

// SMTPSender sends mail over an authenticated STARTTLS connection. Every
// send gets a fresh connection with an explicit dial and I/O deadline, so a
// stalled relay cannot pin a request handler indefinitely.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	timeout  time.Duration
}

// NewSMTPSender creates a new SMTPSender.
func NewSMTPSender(host, port, username, password string, timeout time.Duration) (*SMTPSender, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP host not set")
	}
	if port == "" {
		return nil, fmt.Errorf("SMTP port not set")
	}
	if username == "" {
		return nil, fmt.Errorf("SMTP username not set")
	}
	if password == "" {
		return nil, fmt.Errorf("SMTP password not set")
	}

	return &SMTPSender{host: host, port: port, username: username, password: password, timeout: timeout}, nil
}

func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, body string) (SendResult, error) {
	if err := ctx.Err(); err != nil {
		return SendResult{}, err
	}

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	addr := net.JoinHostPort(s.host, s.port)
	conn, err := net.DialTimeout("tcp", addr, time.Until(deadline))
	if err != nil {
		return SendResult{}, fmt.Errorf("smtp dial failed: %w", err)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return SendResult{}, err
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return SendResult{}, fmt.Errorf("smtp handshake failed: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
		return SendResult{}, fmt.Errorf("smtp starttls failed: %w", err)
	}
	if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
		return SendResult{}, fmt.Errorf("smtp auth failed: %w", err)
	}

	msg := []byte(
		"From: " + s.username + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	if err := client.Mail(s.username); err != nil {
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}
	_ = client.Quit()

	return SendResult{
		MessageID: fmt.Sprintf("smtp-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}
