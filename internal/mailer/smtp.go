// Package mailer sends HTML mail over SMTP with STARTTLS, falling back
// to implicit TLS when the server only accepts submissions on 465.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/google/uuid"
)

type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	timeout  time.Duration
}

func New(host, port, username, password, from string, timeout time.Duration) *Mailer {
	if from == "" {
		from = username
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		timeout:  timeout,
	}
}

// Send delivers one message. The whole exchange is bounded by the
// earlier of the configured timeout and the context deadline; on expiry
// the send fails like any other transport error.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	deadline := time.Now().Add(m.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	msg := m.buildMessage(to, subject, htmlBody)
	addr := net.JoinHostPort(m.host, m.port)

	c, err := m.dial(addr, deadline)
	if err != nil {
		return err
	}
	defer c.Quit()

	if err := m.authenticate(c); err != nil {
		return err
	}
	return m.submit(c, to, msg)
}

// dial opens the connection with the deadline applied before the first
// byte is read, so a silent server cannot wedge the exchange. Port 465
// means implicit TLS; everything else negotiates STARTTLS when offered.
func (m *Mailer) dial(addr string, deadline time.Time) (*smtp.Client, error) {
	dialer := &net.Dialer{Deadline: deadline}

	var conn net.Conn
	var err error
	if m.port == "465" {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: m.host})
	} else {
		conn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	_ = conn.SetDeadline(deadline)

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	if m.port != "465" {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
				c.Close()
				return nil, fmt.Errorf("smtp starttls: %w", err)
			}
		}
	}
	return c, nil
}

func (m *Mailer) authenticate(c *smtp.Client) error {
	if m.username == "" {
		return nil
	}
	if ok, _ := c.Extension("AUTH"); !ok {
		return nil
	}
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	return nil
}

func (m *Mailer) submit(c *smtp.Client, to string, msg []byte) error {
	if err := c.Mail(m.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to %s: %w", to, err)
	}
	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := wc.Write(msg); err != nil {
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("smtp close body: %w", err)
	}
	return nil
}

func (m *Mailer) buildMessage(to, subject, htmlBody string) []byte {
	return []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Message-ID: <" + uuid.NewString() + "@" + m.host + ">\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"utf-8\"\r\n\r\n" +
		htmlBody + "\r\n")
}
