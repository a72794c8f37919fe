package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Muashef/audiophile-ecommerce/internal/api/middleware"
	"github.com/Muashef/audiophile-ecommerce/internal/errors"
	"github.com/Muashef/audiophile-ecommerce/internal/models"
	service "github.com/Muashef/audiophile-ecommerce/internal/services"
	"github.com/Muashef/audiophile-ecommerce/internal/utils"
	"github.com/Muashef/audiophile-ecommerce/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// CreateOrder godoc
//	@Summary		Submit a checkout order
//	@Description	Validates the checkout payload, issues an order id and persists the order. Persistence failures still yield a success response under the lenient policy.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CreateOrderRequest	true	"Checkout details with cart items and totals"
//	@Success		200		{object}	models.CreateOrderResponse	"Order accepted"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or empty cart"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/orders [post]
func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create order input")
			return
		}

		resp, err := h.orderService.CreateOrder(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order created successfully", slog.String("orderId", resp.OrderID.String()))
		response.Success(w, http.StatusOK, resp)
	}
}

// GetOrder godoc
//	@Summary		Get an order by ID
//	@Description	Looks up an order by the orderId query parameter. Distinguishes a missing order from a lookup failure.
//	@Tags			Orders
//	@Produce		json
//	@Param			orderId	query		string					true	"Order ID (UUID)"	Format(uuid)
//	@Success		200		{object}	models.OrderResponse	"Order found"
//	@Failure		400		{object}	response.ErrorResponse	"Missing or malformed order ID"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Failure		500		{object}	response.ErrorResponse	"Lookup failed"
//	@Router			/orders [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		rawID := r.URL.Query().Get("orderId")
		if rawID == "" {
			logger.Warn("Order lookup without orderId")
			response.Error(w, errors.BadRequestError("Order ID is required"))
			return
		}

		orderID, err := uuid.Parse(rawID)
		if err != nil {
			logger.Warn("Malformed order ID", slog.String("orderId", rawID))
			response.Error(w, errors.BadRequestError("Invalid order ID format"))
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), orderID)
		if err != nil {
			logger.Error("Failed to fetch order", slog.String("orderId", rawID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.OrderResponse{Order: order})
	}
}

// OrderHistory godoc
//	@Summary		List orders for an email address
//	@Description	Returns the orders placed under the given email, newest first.
//	@Tags			Orders
//	@Produce		json
//	@Param			email	query		string						true	"Customer email"
//	@Success		200		{object}	models.OrderHistoryResponse	"Orders"
//	@Failure		400		{object}	response.ErrorResponse		"Missing email"
//	@Failure		500		{object}	response.ErrorResponse		"Lookup failed"
//	@Router			/orders/history [get]
func (h *OrderHandler) OrderHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		email := r.URL.Query().Get("email")
		if email == "" {
			response.Error(w, errors.BadRequestError("Email is required"))
			return
		}

		orders, err := h.orderService.ListOrdersByEmail(r.Context(), email)
		if err != nil {
			logger.Error("Failed to fetch order history", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.OrderHistoryResponse{Orders: orders, Total: len(orders)})
	}
}
