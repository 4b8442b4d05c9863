package handlers

import (
	"net/http"

	"finalprojectapi/services/catalog"
	"finalprojectapi/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves brands and products under /api.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func (h *CatalogHandler) ListBrandsHandler(c *gin.Context) {
	brands, err := h.Service.ListBrands(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *CatalogHandler) GetBrandHandler(c *gin.Context) {
	brand, err := h.Service.GetBrand(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

// ListProductsHandler handles GET /api/products?brandId=.
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.Service.ListProducts(c.Request.Context(), c.Query("brandId"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProductHandler(c *gin.Context) {
	product, err := h.Service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) SearchProductsHandler(c *gin.Context) {
	products, err := h.Service.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) FeaturedProductsHandler(c *gin.Context) {
	products, err := h.Service.ListFeatured(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
