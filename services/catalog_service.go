package services

import (
	"context"

	"storefront/models"
	"storefront/repositories"
)

type productReader interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

// CatalogService serves the read-only product listing. Products are created
// out-of-band; nothing here mutates them.
type CatalogService struct {
	products productReader
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		products: repositories.NewProductRepository(),
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.GetAll(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}
