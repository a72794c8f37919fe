package models

// OrderEmailRequest is the payload of the confirmation-email endpoint. It
// repeats the order summary so the notifier never has to re-read the order
// from the backend.
type OrderEmailRequest struct {
	OrderID  string      `json:"orderId"  validate:"required"`
	Email    string      `json:"email"    validate:"required,email"`
	Name     string      `json:"name"     validate:"required"`
	Items    []OrderItem `json:"items"    validate:"required,min=1,dive"`
	Subtotal float64     `json:"subtotal" validate:"gte=0"`
	Shipping float64     `json:"shipping" validate:"gte=0"`
	Tax      float64     `json:"tax"      validate:"gte=0"`
	Total    float64     `json:"total"    validate:"gte=0"`
}

type EmailResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
	Error   string `json:"error,omitempty"`
}
