package service

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/Muashef/audiophile-ecommerce/internal/errors"
	"github.com/Muashef/audiophile-ecommerce/internal/models"
	"github.com/Muashef/audiophile-ecommerce/pkg/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTransport struct {
	sent []*email.Message
	err  error
}

func (t *recordingTransport) Send(ctx context.Context, msg *email.Message) error {
	if t.err != nil {
		return t.err
	}

	t.sent = append(t.sent, msg)

	return nil
}

func (t *recordingTransport) Name() string { return "recording" }

func orderEmailRequest() *models.OrderEmailRequest {
	return &models.OrderEmailRequest{
		OrderID: "4f5e8c1a-9b2d-4c3e-8f1a-2b3c4d5e6f7a",
		Email:   "alexei@mail.com",
		Name:    "Alexei Ward",
		Items: []models.OrderItem{
			{ID: "zx9-speaker", Name: "ZX9", Price: 4500, Quantity: 1},
		},
		Subtotal: 4500,
		Shipping: 50,
		Tax:      450,
		Total:    5000,
	}
}

func TestSendOrderConfirmation(t *testing.T) {

	t.Run("Success - email dispatched through transport", func(t *testing.T) {
		transport := &recordingTransport{}
		svc := NewNotificationService(transport, "http://localhost:3000")

		result, err := svc.SendOrderConfirmation(context.Background(), orderEmailRequest())

		require.NoError(t, err)
		assert.True(t, result.Success)
		require.Len(t, transport.sent, 1)

		msg := transport.sent[0]
		assert.Equal(t, "alexei@mail.com", msg.To)
		assert.Equal(t, "Order Confirmation - #4f5e8c1a-9b2d-4c3e-8f1a-2b3c4d5e6f7a", msg.Subject)
		assert.Contains(t, msg.HTML, "ZX9")
		assert.Contains(t, msg.HTML, "http://localhost:3000/checkout/confirmation/4f5e8c1a-9b2d-4c3e-8f1a-2b3c4d5e6f7a")
	})

	t.Run("Success - no transport degrades to no-op", func(t *testing.T) {
		svc := NewNotificationService(nil, "http://localhost:3000")

		result, err := svc.SendOrderConfirmation(context.Background(), orderEmailRequest())

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Order saved (email service not configured)", result.Message)
	})

	t.Run("Success - customer name is stripped of markup", func(t *testing.T) {
		transport := &recordingTransport{}
		svc := NewNotificationService(transport, "http://localhost:3000")

		req := orderEmailRequest()
		req.Name = `<script>alert("x")</script>Alexei`

		_, err := svc.SendOrderConfirmation(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, transport.sent, 1)
		assert.False(t, strings.Contains(transport.sent[0].HTML, "<script>"))
		assert.Contains(t, transport.sent[0].HTML, "Alexei")
	})

	t.Run("Failure - transport error surfaces as dispatch failure", func(t *testing.T) {
		transport := &recordingTransport{err: stderrors.New("smtp: connection refused")}
		svc := NewNotificationService(transport, "http://localhost:3000")

		result, err := svc.SendOrderConfirmation(context.Background(), orderEmailRequest())

		require.Error(t, err)
		assert.Nil(t, result)

		appErr, ok := errors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeEmailDispatch, appErr.Code)
	})
}
