package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Muashef/audiophile-ecommerce/internal/api/middleware"
	"github.com/Muashef/audiophile-ecommerce/internal/models"
	service "github.com/Muashef/audiophile-ecommerce/internal/services"
	"github.com/Muashef/audiophile-ecommerce/internal/utils"
	"github.com/Muashef/audiophile-ecommerce/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type NotificationHandler struct {
	notificationService service.NotificationService
	validator           *validator.Validate
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, validator: validator.New()}
}

// SendOrderEmail godoc
//	@Summary		Send an order confirmation email
//	@Description	Dispatches the confirmation email for an order. Without a configured mail transport the request is a successful no-op.
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			email	body		models.OrderEmailRequest	true	"Order summary to send"
//	@Success		200		{object}	models.EmailResult			"Email sent or skipped"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		500		{object}	response.ErrorResponse		"Dispatch failed"
//	@Router			/notifications/email [post]
func (h *NotificationHandler) SendOrderEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.OrderEmailRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid order email input")
			return
		}

		result, err := h.notificationService.SendOrderConfirmation(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to send order email", slog.String("orderId", req.OrderID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order email handled", slog.String("orderId", req.OrderID), slog.String("message", result.Message))
		response.Success(w, http.StatusOK, result)
	}
}
