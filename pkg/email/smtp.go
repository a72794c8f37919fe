package email

import (
	"context"
	"fmt"

	"github.com/Muashef/audiophile-ecommerce/internal/config"
	mail "github.com/wneessen/go-mail"
)

type smtpTransport struct {
	cfg *config.SMTP
}

func NewSMTPTransport(cfg *config.SMTP) Transport {
	return &smtpTransport{cfg: cfg}
}

func (t *smtpTransport) Name() string {
	return "smtp"
}

func (t *smtpTransport) Send(ctx context.Context, msg *Message) error {

	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(t.cfg.Username),
		mail.WithPassword(t.cfg.Password),
	}

	// Port 465 speaks implicit TLS; everything else negotiates STARTTLS.
	if t.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(t.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	m := mail.NewMsg()

	if err := m.FromFormat(t.cfg.FromName, t.cfg.FromEmail); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}

	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
