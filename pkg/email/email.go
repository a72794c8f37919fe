// Package email provides the outbound transports for order confirmation
// mail. A nil Transport means no delivery channel is configured; callers
// are expected to degrade to a no-op rather than fail.
package email

import (
	"context"

	"github.com/Muashef/audiophile-ecommerce/internal/config"
)

type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

type Transport interface {
	Send(ctx context.Context, msg *Message) error
	Name() string
}

// NewFromConfig picks the configured transport: SMTP wins when both are
// set since it is the storefront's native channel, SendGrid is the hosted
// alternative. Returns nil when neither is configured.
func NewFromConfig(cfg *config.Config) Transport {

	if cfg.SMTP.Configured() {
		return NewSMTPTransport(&cfg.SMTP)
	}

	if cfg.SendGrid.Configured() {
		return NewSendGridTransport(&cfg.SendGrid)
	}

	return nil
}
