package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"

	"cotizador_taller/internal/config"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/jordan-wright/email"
)

var ErrMailerNotConfigured = errors.New("smtp host not configured")

// sendFunc matches (*email.Email).Send so tests can capture messages.
type sendFunc func(e *email.Email, addr string, auth smtp.Auth) error

// Mailer wraps SMTP configuration for plain-text notifications.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
	send     sendFunc
}

var _ interfaces.IMailer = (*Mailer)(nil)

func NewMailer(cfg *config.Config) *Mailer {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     from,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

func (m *Mailer) Send(ctx context.Context, to []string, subject, body string) error {
	if m.host == "" {
		return ErrMailerNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e := email.NewEmail()
	e.From = m.from
	e.To = to
	e.Subject = subject
	e.Text = []byte(body)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	if err := m.send(e, m.addr, auth); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}
