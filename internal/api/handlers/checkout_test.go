package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Muashef/audiophile-ecommerce/internal/cart"
	"github.com/Muashef/audiophile-ecommerce/internal/errors"
	"github.com/Muashef/audiophile-ecommerce/internal/models"
	"github.com/Muashef/audiophile-ecommerce/internal/services/mocks"
	"github.com/Muashef/audiophile-ecommerce/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeConfirmation(t *testing.T, rec *httptest.ResponseRecorder) models.ConfirmationView {
	t.Helper()

	var resp struct {
		Data models.ConfirmationView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp.Data
}

func TestConfirmationHandler(t *testing.T) {

	t.Run("Success - found order clears the session cart", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		store := cart.NewStore()
		handler := NewCheckoutHandler(svc, store)

		store.AddItem("session-1", models.CartLine{ID: "zx9-speaker", Name: "ZX9", Price: 4500, Quantity: 1})

		orderID := uuid.New()
		svc.On("GetOrder", mock.Anything, orderID).Return(&models.Order{ID: orderID}, nil)

		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/checkout/confirmation/"+orderID.String(), nil, "session-1",
			map[string]string{"orderId": orderID.String()})
		rec := httptest.NewRecorder()

		handler.Confirmation().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		view := decodeConfirmation(t, rec)
		assert.Equal(t, "found", view.State)
		require.NotNil(t, view.Order)
		assert.Equal(t, orderID, view.Order.ID)
		assert.Empty(t, store.Lines("session-1"))
	})

	t.Run("Success - unknown order reports not-found and keeps the cart", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		store := cart.NewStore()
		handler := NewCheckoutHandler(svc, store)

		store.AddItem("session-1", models.CartLine{ID: "zx9-speaker", Name: "ZX9", Price: 4500, Quantity: 1})

		orderID := uuid.New()
		svc.On("GetOrder", mock.Anything, orderID).Return(nil, errors.NotFoundError("Order not found"))

		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/checkout/confirmation/"+orderID.String(), nil, "session-1",
			map[string]string{"orderId": orderID.String()})
		rec := httptest.NewRecorder()

		handler.Confirmation().ServeHTTP(rec, req)

		view := decodeConfirmation(t, rec)
		assert.Equal(t, "not-found", view.State)
		assert.Nil(t, view.Order)
		assert.Len(t, store.Lines("session-1"), 1)
	})

	t.Run("Success - lookup failure reports failed, distinct from not-found", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		store := cart.NewStore()
		handler := NewCheckoutHandler(svc, store)

		orderID := uuid.New()
		svc.On("GetOrder", mock.Anything, orderID).Return(nil, errors.DatabaseError("Failed to fetch order"))

		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/checkout/confirmation/"+orderID.String(), nil, "session-1",
			map[string]string{"orderId": orderID.String()})
		rec := httptest.NewRecorder()

		handler.Confirmation().ServeHTTP(rec, req)

		view := decodeConfirmation(t, rec)
		assert.Equal(t, "failed", view.State)
	})

	t.Run("Failure - malformed order id", func(t *testing.T) {
		svc := new(mocks.MockOrderService)
		handler := NewCheckoutHandler(svc, cart.NewStore())

		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/checkout/confirmation/nope", nil, "session-1",
			map[string]string{"orderId": "nope"})
		rec := httptest.NewRecorder()

		handler.Confirmation().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
	})
}
