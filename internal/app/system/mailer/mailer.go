// Package mailer sends the internal notification email when a new lead
// arrives. Delivery is best-effort: a mail failure is logged and never
// surfaced to the visitor.
package mailer

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Email is a single outbound message with both text and HTML bodies.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Config holds SMTP settings, loaded from app config.
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

// Sender delivers email over SMTP.
type Sender struct {
	cfg Config
	log *zap.Logger

	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSender creates an SMTP sender.
func NewSender(cfg Config, logger *zap.Logger) *Sender {
	return &Sender{cfg: cfg, log: logger, send: smtp.SendMail}
}

// Send delivers the email. Auth is used only when a username is configured,
// so local dev against Mailpit works without credentials.
func (s *Sender) Send(e Email) error {
	if e.To == "" {
		return fmt.Errorf("email has no recipient")
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}

	msg := s.buildMessage(e)
	if err := s.send(addr, auth, s.cfg.From, []string{e.To}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", e.To, err)
	}

	s.log.Info("notification email sent", zap.String("to", e.To), zap.String("subject", e.Subject))
	return nil
}

// buildMessage assembles a multipart/alternative MIME message so mail
// clients can choose between the text and HTML bodies.
func (s *Sender) buildMessage(e Email) []byte {
	const boundary = "sovra-mime-boundary"

	from := s.cfg.From
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", s.cfg.FromName), s.cfg.From)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", e.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", e.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(e.TextBody)
	b.WriteString("\r\n")

	if e.HTMLBody != "" {
		fmt.Fprintf(&b, "--%s\r\n", boundary)
		b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
		b.WriteString(e.HTMLBody)
		b.WriteString("\r\n")
	}

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
