package models

// ImageSet carries the responsive variants of a single image.
type ImageSet struct {
	Mobile  string `json:"mobile"`
	Tablet  string `json:"tablet"`
	Desktop string `json:"desktop"`
}

type IncludedItem struct {
	Quantity int    `json:"quantity"`
	Item     string `json:"item"`
}

type Gallery struct {
	First  ImageSet `json:"first"`
	Second ImageSet `json:"second"`
	Third  ImageSet `json:"third"`
}

// RelatedProduct is the teaser shown in the "you may also like" section.
type RelatedProduct struct {
	Slug  string   `json:"slug"`
	Name  string   `json:"name"`
	Image ImageSet `json:"image"`
}

// CartSummary is the compact representation a product contributes to a cart
// line (short name plus thumbnail).
type CartSummary struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Product struct {
	ID            int              `json:"id"`
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	Image         ImageSet         `json:"image"`
	Category      string           `json:"category"`
	CategoryImage ImageSet         `json:"categoryImage"`
	New           bool             `json:"new"`
	Price         float64          `json:"price"`
	Description   string           `json:"description"`
	Features      string           `json:"features"`
	Includes      []IncludedItem   `json:"includes"`
	Gallery       Gallery          `json:"gallery"`
	Others        []RelatedProduct `json:"others"`
	Cart          CartSummary      `json:"cart"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}
