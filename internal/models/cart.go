package models

// CartLine is one entry of a session cart. The id is unique within a cart;
// adding the same id twice is rejected rather than merged.
type CartLine struct {
	ID       string  `json:"id"       validate:"required"`
	Name     string  `json:"name"     validate:"required"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	ID       string `json:"id"       validate:"required"`
	Quantity int    `json:"quantity" validate:"required"`
}

// Notice is a transient user-facing message (rendered as a toast).
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

const (
	NoticeLevelSuccess = "success"
	NoticeLevelError   = "error"
)

type CartResponse struct {
	Items    []CartLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Shipping float64    `json:"shipping"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
	Notice   *Notice    `json:"notice,omitempty"`
}
