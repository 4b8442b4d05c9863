package catalog

import (
	"context"
	"sort"
	"strings"

	"finalprojectapi/models"
	"finalprojectapi/utils"

	"go.uber.org/zap"
)

// ListProducts returns every product, or only those of brandID when given.
func (s *DefaultCatalogService) ListProducts(ctx context.Context, brandID string) ([]models.Product, error) {
	var (
		products []models.Product
		err      error
	)
	if brandID != "" {
		products, err = s.Products.GetByBrand(ctx, brandID)
	} else {
		products, err = s.Products.GetAll(ctx)
	}
	if err != nil {
		return nil, utils.StoreFailure(err)
	}
	return products, nil
}

func (s *DefaultCatalogService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	product, found, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, utils.StoreFailure(err)
	}
	if !found {
		return models.Product{}, utils.NotFound("Product not found")
	}
	return product, nil
}

// SearchProducts scans the whole collection for a case-insensitive substring
// of name or description. Products without a name never match.
func (s *DefaultCatalogService) SearchProducts(ctx context.Context, q string) ([]models.Product, error) {
	if q == "" {
		return nil, utils.MissingParameter("Query parameter 'q' is required")
	}
	products, err := s.Products.GetAll(ctx)
	if err != nil {
		return nil, utils.StoreFailure(err)
	}
	return filterByText(products, q), nil
}

func filterByText(products []models.Product, q string) []models.Product {
	needle := strings.ToLower(q)
	matches := make([]models.Product, 0)
	var unnamed []string
	for _, p := range products {
		name, ok := p.Name()
		if !ok {
			unnamed = append(unnamed, p.ID)
			continue
		}
		if strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, p)
			continue
		}
		if desc, ok := p.Description(); ok && strings.Contains(strings.ToLower(desc), needle) {
			matches = append(matches, p)
		}
	}
	if len(unnamed) > 0 {
		utils.GetLogger().Warn("Skipped products without a name during search", zap.Strings("ids", unnamed))
	}
	return matches
}

// ListFeatured returns up to FeaturedLimit products rated FeaturedMinRating or
// better, highest first. Equal ratings are ordered by id.
func (s *DefaultCatalogService) ListFeatured(ctx context.Context) ([]models.Product, error) {
	products, err := s.Products.GetTopRated(ctx, FeaturedMinRating, FeaturedLimit)
	if err != nil {
		return nil, utils.StoreFailure(err)
	}
	return rankFeatured(products), nil
}

// rankFeatured re-applies the ranking on whatever the store returned, so the
// result holds even for backends with a different tie order.
func rankFeatured(products []models.Product) []models.Product {
	ranked := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Rating() >= FeaturedMinRating {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].Rating(), ranked[j].Rating()
		if ri != rj {
			return ri > rj
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > FeaturedLimit {
		ranked = ranked[:FeaturedLimit]
	}
	return ranked
}
