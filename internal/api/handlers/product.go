package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Muashef/audiophile-ecommerce/internal/api/middleware"
	"github.com/Muashef/audiophile-ecommerce/internal/errors"
	service "github.com/Muashef/audiophile-ecommerce/internal/services"
	"github.com/Muashef/audiophile-ecommerce/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Returns the catalog, optionally filtered by category.
//	@Tags			Products
//	@Produce		json
//	@Param			category	query		string						false	"Category filter (headphones, speakers, earphones)"
//	@Success		200			{object}	models.ProductListResponse	"Products"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		category := r.URL.Query().Get("category")

		products, err := h.productService.ListProducts(r.Context(), category)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//	@Summary		Get a product by slug
//	@Tags			Products
//	@Produce		json
//	@Param			slug	path		string					true	"Product slug"
//	@Success		200		{object}	models.Product			"Product"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{slug} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		slug := r.PathValue("slug")
		if slug == "" {
			response.Error(w, errors.BadRequestError("Product slug is required"))
			return
		}

		product, err := h.productService.GetProductBySlug(r.Context(), slug)
		if err != nil {
			logger.Warn("Product lookup failed", slog.String("slug", slug))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
