package catalog

import (
	"context"

	catalogRepo "finalprojectapi/database/repository/catalog"
	"finalprojectapi/models"
)

// Featured ranking bounds.
const (
	FeaturedMinRating = 4.7
	FeaturedLimit     = 6
)

// CatalogService exposes brand lookup and the product views.
type CatalogService interface {
	ListBrands(ctx context.Context) ([]models.Brand, error)
	GetBrand(ctx context.Context, id string) (models.Brand, error)

	ListProducts(ctx context.Context, brandID string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	SearchProducts(ctx context.Context, q string) ([]models.Product, error)
	ListFeatured(ctx context.Context) ([]models.Product, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Brands   catalogRepo.BrandRepository
	Products catalogRepo.ProductRepository
}

func NewDefaultCatalogService(brands catalogRepo.BrandRepository, products catalogRepo.ProductRepository) *DefaultCatalogService {
	return &DefaultCatalogService{Brands: brands, Products: products}
}
