// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"finalprojectapi/database/store"
	"finalprojectapi/models"
)

type BrandRepository interface {
	GetAll(ctx context.Context) ([]models.Brand, error)
	GetByID(ctx context.Context, id string) (models.Brand, bool, error)
}

type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, bool, error)
	GetByBrand(ctx context.Context, brandID string) ([]models.Product, error)
	// GetTopRated returns products rated at least minRating, best first, at
	// most limit of them. Order among equal ratings is up to the backend.
	GetTopRated(ctx context.Context, minRating float64, limit int) ([]models.Product, error)
}

type storeBrandRepo struct {
	store store.DocumentStore
}

type storeProductRepo struct {
	store store.DocumentStore
}

func NewBrandRepo(ds store.DocumentStore) BrandRepository {
	return &storeBrandRepo{store: ds}
}

func NewProductRepo(ds store.DocumentStore) ProductRepository {
	return &storeProductRepo{store: ds}
}
