package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Muashef/audiophile-ecommerce/internal/api/middleware"
	"github.com/Muashef/audiophile-ecommerce/internal/cart"
	"github.com/Muashef/audiophile-ecommerce/internal/errors"
	"github.com/Muashef/audiophile-ecommerce/internal/models"
	"github.com/Muashef/audiophile-ecommerce/internal/pricing"
	"github.com/Muashef/audiophile-ecommerce/internal/utils"
	"github.com/Muashef/audiophile-ecommerce/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	store     *cart.Store
	validator *validator.Validate
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store, validator: validator.New()}
}

func cartResponse(lines []models.CartLine, notice *models.Notice) models.CartResponse {

	priced := make([]pricing.Line, 0, len(lines))
	for _, line := range lines {
		priced = append(priced, pricing.Line{Price: line.Price, Quantity: line.Quantity})
	}

	totals := pricing.ComputeTotals(priced)

	if lines == nil {
		lines = []models.CartLine{}
	}

	return models.CartResponse{
		Items:    lines,
		Subtotal: totals.Subtotal,
		Shipping: totals.Shipping,
		Tax:      totals.Tax,
		Total:    totals.Total,
		Notice:   notice,
	}
}

// GetCart godoc
//	@Summary		Get the session cart
//	@Description	Returns the cart of the current session together with its computed totals.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartResponse	"Cart contents"
//	@Router			/carts [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionFromContext(r.Context())

		lines := h.store.Lines(sessionID)
		response.Success(w, http.StatusOK, cartResponse(lines, nil))
	}
}

// AddItem godoc
//	@Summary		Add an item to the cart
//	@Description	Adds a line to the session cart. Adding an id already present is rejected and leaves the cart unchanged.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CartLine			true	"Item to add"
//	@Success		200		{object}	models.CartResponse		"Cart after the attempt, with a notice"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Router			/carts/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sessionID := middleware.SessionFromContext(r.Context())

		var line models.CartLine
		if !utils.ParseAndValidate(r, w, &line, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		lines, notice := h.store.AddItem(sessionID, line)

		logger.Info("Cart add attempted", slog.String("itemId", line.ID), slog.String("result", notice.Level))
		response.Success(w, http.StatusOK, cartResponse(lines, &notice))
	}
}

// UpdateQuantity godoc
//	@Summary		Change the quantity of a cart line
//	@Description	Sets the quantity of an existing line. Quantities below one are ignored.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			update	body		models.UpdateQuantityRequest	true	"Line id and new quantity"
//	@Success		200		{object}	models.CartResponse				"Cart after the update"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		404		{object}	response.ErrorResponse			"Item not in cart"
//	@Router			/carts/items [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sessionID := middleware.SessionFromContext(r.Context())

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity update input")
			return
		}

		lines, err := h.store.SetQuantity(sessionID, req.ID, req.Quantity)
		if err != nil {
			response.Error(w, errors.NotFoundError("Item not found in cart"))
			return
		}

		response.Success(w, http.StatusOK, cartResponse(lines, nil))
	}
}

// RemoveItem godoc
//	@Summary		Remove a line from the cart
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string				true	"Cart line id"
//	@Success		200	{object}	models.CartResponse	"Cart after removal"
//	@Router			/carts/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionFromContext(r.Context())

		itemID := r.PathValue("id")
		if itemID == "" {
			response.Error(w, errors.BadRequestError("Item ID is required"))
			return
		}

		lines := h.store.RemoveItem(sessionID, itemID)
		response.Success(w, http.StatusOK, cartResponse(lines, nil))
	}
}

// ClearCart godoc
//	@Summary		Empty the session cart
//	@Description	Removes every line. Clearing an already empty cart succeeds.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartResponse	"Empty cart"
//	@Router			/carts [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionFromContext(r.Context())

		h.store.Clear(sessionID)
		response.Success(w, http.StatusOK, cartResponse(nil, nil))
	}
}
