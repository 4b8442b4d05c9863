// File: database/repository/catalog/queries.go
package catalogRepo

import (
	"context"
	"fmt"

	"finalprojectapi/database/store"
	"finalprojectapi/models"
)

func (r *storeBrandRepo) GetAll(ctx context.Context) ([]models.Brand, error) {
	docs, err := r.store.Find(ctx, models.BrandsCollection, store.Query{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch brands: %w", err)
	}
	return models.BrandsFrom(docs), nil
}

func (r *storeBrandRepo) GetByID(ctx context.Context, id string) (models.Brand, bool, error) {
	doc, found, err := r.store.Get(ctx, models.BrandsCollection, id)
	if err != nil {
		return models.Brand{}, false, fmt.Errorf("failed to fetch brand %s: %w", id, err)
	}
	return models.Brand{Document: doc}, found, nil
}

func (r *storeProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	docs, err := r.store.Find(ctx, models.ProductsCollection, store.Query{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return models.ProductsFrom(docs), nil
}

func (r *storeProductRepo) GetByID(ctx context.Context, id string) (models.Product, bool, error) {
	doc, found, err := r.store.Get(ctx, models.ProductsCollection, id)
	if err != nil {
		return models.Product{}, false, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return models.Product{Document: doc}, found, nil
}

func (r *storeProductRepo) GetByBrand(ctx context.Context, brandID string) ([]models.Product, error) {
	q := store.Query{}.Where(models.FieldBrandID, store.OpEqual, brandID)
	docs, err := r.store.Find(ctx, models.ProductsCollection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products of brand %s: %w", brandID, err)
	}
	return models.ProductsFrom(docs), nil
}

func (r *storeProductRepo) GetTopRated(ctx context.Context, minRating float64, limit int) ([]models.Product, error) {
	q := store.Query{}.
		Where(models.FieldRating, store.OpGreaterEqual, minRating).
		OrderBy(models.FieldRating, store.Desc).
		WithLimit(limit)
	docs, err := r.store.Find(ctx, models.ProductsCollection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top rated products: %w", err)
	}
	return models.ProductsFrom(docs), nil
}
