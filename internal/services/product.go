package service

import (
	"context"

	"github.com/Muashef/audiophile-ecommerce/internal/catalog"
	"github.com/Muashef/audiophile-ecommerce/internal/errors"
	"github.com/Muashef/audiophile-ecommerce/internal/models"
)

type ProductService interface {
	ListProducts(ctx context.Context, category string) (*models.ProductListResponse, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
}

type productService struct {
	catalog *catalog.Catalog
}

func NewProductService(c *catalog.Catalog) ProductService {
	return &productService{catalog: c}
}

func (s *productService) ListProducts(ctx context.Context, category string) (*models.ProductListResponse, error) {

	products := s.catalog.List(category)

	return &models.ProductListResponse{
		Products: products,
		Total:    len(products),
	}, nil
}

func (s *productService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {

	product, ok := s.catalog.BySlug(slug)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	return &product, nil
}
