package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Muashef/audiophile-ecommerce/internal/api/middleware"
	"github.com/Muashef/audiophile-ecommerce/internal/cart"
	"github.com/Muashef/audiophile-ecommerce/internal/checkout"
	"github.com/Muashef/audiophile-ecommerce/internal/errors"
	"github.com/Muashef/audiophile-ecommerce/internal/models"
	service "github.com/Muashef/audiophile-ecommerce/internal/services"
	"github.com/Muashef/audiophile-ecommerce/internal/utils/response"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	orderService service.OrderService
	cartStore    *cart.Store
}

func NewCheckoutHandler(orderService service.OrderService, cartStore *cart.Store) *CheckoutHandler {
	return &CheckoutHandler{orderService: orderService, cartStore: cartStore}
}

// Confirmation godoc
//	@Summary		Resolve the order confirmation view
//	@Description	Looks up the order behind a confirmation page and reports one of found, not-found or failed. A found confirmation clears the session cart.
//	@Tags			Checkout
//	@Produce		json
//	@Param			orderId	path		string					true	"Order ID (UUID)"	Format(uuid)
//	@Success		200		{object}	models.ConfirmationView	"Confirmation state"
//	@Failure		400		{object}	response.ErrorResponse	"Malformed order ID"
//	@Router			/checkout/confirmation/{orderId} [get]
func (h *CheckoutHandler) Confirmation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sessionID := middleware.SessionFromContext(r.Context())

		rawID := r.PathValue("orderId")
		orderID, err := uuid.Parse(rawID)
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid order ID format"))
			return
		}

		confirmation := checkout.NewConfirmation(func(order *models.Order) {
			h.cartStore.Clear(sessionID)
		})

		order, err := h.orderService.GetOrder(r.Context(), orderID)

		switch {
		case err == nil:
			confirmation.Resolve(order)
		case isNotFound(err):
			logger.Warn("Confirmation for unknown order", slog.String("orderId", rawID))
			confirmation.RejectNotFound()
		default:
			logger.Error("Confirmation lookup failed", slog.String("orderId", rawID), slog.Any("error", err))
			confirmation.Fail()
		}

		// The page renders all three outcomes itself, so the state travels
		// in the body rather than the status code.
		response.Success(w, http.StatusOK, confirmation.View())
	}
}

func isNotFound(err error) bool {
	appErr, ok := errors.IsAppError(err)

	return ok && appErr.Code == errors.ErrCodeNotFound
}
