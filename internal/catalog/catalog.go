// Package catalog serves the static product list. The data ships embedded
// in the binary, is parsed once at startup and never mutated afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Muashef/audiophile-ecommerce/internal/models"
)

//go:embed products.json
var productsJSON []byte

type Catalog struct {
	products []models.Product
	bySlug   map[string]int
	byID     map[int]int
}

func Load() (*Catalog, error) {

	var products []models.Product

	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	c := &Catalog{
		products: products,
		bySlug:   make(map[string]int, len(products)),
		byID:     make(map[int]int, len(products)),
	}

	for i, p := range products {
		if _, exists := c.bySlug[p.Slug]; exists {
			return nil, fmt.Errorf("duplicate product slug in catalog: %s", p.Slug)
		}

		c.bySlug[p.Slug] = i
		c.byID[p.ID] = i
	}

	return c, nil
}

// List returns every product, optionally filtered by category.
func (c *Catalog) List(category string) []models.Product {

	if category == "" {
		out := make([]models.Product, len(c.products))
		copy(out, c.products)

		return out
	}

	var out []models.Product

	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}

	return out
}

func (c *Catalog) BySlug(slug string) (models.Product, bool) {

	i, ok := c.bySlug[slug]
	if !ok {
		return models.Product{}, false
	}

	return c.products[i], true
}

func (c *Catalog) ByID(id int) (models.Product, bool) {

	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}

	return c.products[i], true
}
