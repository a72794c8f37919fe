package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusShipped   OrderStatus = "shipped"
)

type PaymentMethod string

const (
	PaymentMethodEMoney         PaymentMethod = "e-money"
	PaymentMethodCashOnDelivery PaymentMethod = "cash-on-delivery"
)

type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
}

type Order struct {
	ID            uuid.UUID     `json:"id"`
	CustomerName  string        `json:"customerName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Country       string        `json:"country"`
	Zip           string        `json:"zip"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	EmoneyNumber  string        `json:"emoneyNumber,omitempty"`
	EmoneyPin     string        `json:"emoneyPin,omitempty"`
	Items         []OrderItem   `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Shipping      float64       `json:"shipping"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// CreateOrderRequest is the checkout payload. The items slice must be
// non-empty; an empty cart never reaches the order service.
type CreateOrderRequest struct {
	CustomerName  string        `json:"customerName"  validate:"required,min=2"`
	Email         string        `json:"email"         validate:"required,email"`
	Phone         string        `json:"phone"         validate:"required,min=6"`
	Address       string        `json:"address"       validate:"required,min=5"`
	City          string        `json:"city"          validate:"required,min=2"`
	Country       string        `json:"country"       validate:"required,min=2"`
	Zip           string        `json:"zip"           validate:"required,min=3"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=e-money cash-on-delivery"`
	EmoneyNumber  string        `json:"emoneyNumber,omitempty"`
	EmoneyPin     string        `json:"emoneyPin,omitempty"`
	Items         []OrderItem   `json:"items"         validate:"required,min=1,dive"`
	Subtotal      float64       `json:"subtotal"      validate:"gte=0"`
	Shipping      float64       `json:"shipping"      validate:"gte=0"`
	Tax           float64       `json:"tax"           validate:"gte=0"`
	Total         float64       `json:"total"         validate:"gte=0"`
}

type CreateOrderResponse struct {
	OrderID uuid.UUID `json:"orderId"`
	Success bool      `json:"success"`
	Message string    `json:"message"`
}

type OrderResponse struct {
	Order *Order `json:"order"`
}

type OrderHistoryResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

// ConfirmationView is the state rendered by the confirmation page.
type ConfirmationView struct {
	State string `json:"state"`
	Order *Order `json:"order,omitempty"`
}
