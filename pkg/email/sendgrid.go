package email

import (
	"context"
	"fmt"

	"github.com/Muashef/audiophile-ecommerce/internal/config"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridTransport struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridTransport(cfg *config.SendGrid) Transport {
	return &sendGridTransport{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (t *sendGridTransport) Name() string {
	return "sendgrid"
}

func (t *sendGridTransport) Send(ctx context.Context, msg *Message) error {

	from := mail.NewEmail(t.fromName, t.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)
	personalization.Subject = msg.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/html", msg.HTML))

	response, err := t.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
