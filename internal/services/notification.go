package service

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/Muashef/audiophile-ecommerce/internal/errors"
	"github.com/Muashef/audiophile-ecommerce/internal/metrics"
	"github.com/Muashef/audiophile-ecommerce/internal/models"
	"github.com/Muashef/audiophile-ecommerce/pkg/email"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed order_email.html
var orderEmailHTML string

var orderEmailTmpl = template.Must(template.New("order_email").Parse(orderEmailHTML))

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, req *models.OrderEmailRequest) (*models.EmailResult, error)
}

type notificationService struct {
	transport     email.Transport
	sanitizer     *bluemonday.Policy
	publicBaseURL string
}

// NewNotificationService wires the outbound mail channel. A nil transport
// is valid: confirmations are then skipped and reported as success, so a
// storefront without mail credentials still completes checkout.
func NewNotificationService(transport email.Transport, publicBaseURL string) NotificationService {
	return &notificationService{
		transport:     transport,
		sanitizer:     bluemonday.StrictPolicy(),
		publicBaseURL: publicBaseURL,
	}
}

type emailLine struct {
	Name      string
	Quantity  int
	LineTotal float64
}

type emailViewData struct {
	Name            string
	OrderID         string
	Items           []emailLine
	Subtotal        float64
	Shipping        float64
	Tax             float64
	Total           float64
	ConfirmationURL string
}

func (s *notificationService) SendOrderConfirmation(ctx context.Context, req *models.OrderEmailRequest) (*models.EmailResult, error) {

	if s.transport == nil {
		slog.InfoContext(ctx, "Email transport not configured, skipping confirmation",
			slog.String("orderId", req.OrderID))
		metrics.ConfirmationEmails.WithLabelValues(metrics.EmailStatusSkipped).Inc()

		return &models.EmailResult{
			Success: true,
			Message: "Order saved (email service not configured)",
			OrderID: req.OrderID,
		}, nil
	}

	html, err := s.render(req)
	if err != nil {
		metrics.ConfirmationEmails.WithLabelValues(metrics.EmailStatusFailed).Inc()

		return nil, errors.InternalError("Failed to render confirmation email").WithError(err)
	}

	msg := &email.Message{
		To:      req.Email,
		ToName:  s.sanitizer.Sanitize(req.Name),
		Subject: fmt.Sprintf("Order Confirmation - #%s", req.OrderID),
		HTML:    html,
	}

	if err := s.transport.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Confirmation email dispatch failed",
			slog.String("orderId", req.OrderID),
			slog.String("transport", s.transport.Name()),
			slog.String("error", err.Error()))
		metrics.ConfirmationEmails.WithLabelValues(metrics.EmailStatusFailed).Inc()

		return nil, errors.EmailDispatchError("Failed to send confirmation email").WithError(err)
	}

	metrics.ConfirmationEmails.WithLabelValues(metrics.EmailStatusSent).Inc()

	return &models.EmailResult{
		Success: true,
		Message: "Confirmation email sent",
		OrderID: req.OrderID,
	}, nil
}

func (s *notificationService) render(req *models.OrderEmailRequest) (string, error) {

	items := make([]emailLine, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, emailLine{
			Name:      s.sanitizer.Sanitize(item.Name),
			Quantity:  item.Quantity,
			LineTotal: item.Price * float64(item.Quantity),
		})
	}

	data := emailViewData{
		Name:            s.sanitizer.Sanitize(req.Name),
		OrderID:         req.OrderID,
		Items:           items,
		Subtotal:        req.Subtotal,
		Shipping:        req.Shipping,
		Tax:             req.Tax,
		Total:           req.Total,
		ConfirmationURL: fmt.Sprintf("%s/checkout/confirmation/%s", s.publicBaseURL, req.OrderID),
	}

	var buf bytes.Buffer
	if err := orderEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
