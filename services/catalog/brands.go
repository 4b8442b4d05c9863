package catalog

import (
	"context"

	"finalprojectapi/models"
	"finalprojectapi/utils"
)

func (s *DefaultCatalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	brands, err := s.Brands.GetAll(ctx)
	if err != nil {
		return nil, utils.StoreFailure(err)
	}
	return brands, nil
}

func (s *DefaultCatalogService) GetBrand(ctx context.Context, id string) (models.Brand, error) {
	brand, found, err := s.Brands.GetByID(ctx, id)
	if err != nil {
		return models.Brand{}, utils.StoreFailure(err)
	}
	if !found {
		return models.Brand{}, utils.NotFound("Brand not found")
	}
	return brand, nil
}
