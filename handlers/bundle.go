// File: finalprojectapi/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Root and health endpoints
	RootHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc

	// Table endpoints
	ListTablesHandler      gin.HandlerFunc
	GetTableHandler        gin.HandlerFunc
	AvailableTablesHandler gin.HandlerFunc

	// Reservation endpoints
	ListReservationsHandler  gin.HandlerFunc
	CreateReservationHandler gin.HandlerFunc
	DeleteReservationHandler gin.HandlerFunc

	// Catalog endpoints
	ListBrandsHandler       gin.HandlerFunc
	GetBrandHandler         gin.HandlerFunc
	ListProductsHandler     gin.HandlerFunc
	GetProductHandler       gin.HandlerFunc
	SearchProductsHandler   gin.HandlerFunc
	FeaturedProductsHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(tables *TableHandler, reservations *ReservationHandler, catalog *CatalogHandler, health *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		RootHandler:   health.RootHandler,
		HealthHandler: health.HealthHandler,

		ListTablesHandler:      tables.ListTablesHandler,
		GetTableHandler:        tables.GetTableHandler,
		AvailableTablesHandler: tables.AvailableTablesHandler,

		ListReservationsHandler:  reservations.ListReservationsHandler,
		CreateReservationHandler: reservations.CreateReservationHandler,
		DeleteReservationHandler: reservations.DeleteReservationHandler,

		ListBrandsHandler:       catalog.ListBrandsHandler,
		GetBrandHandler:         catalog.GetBrandHandler,
		ListProductsHandler:     catalog.ListProductsHandler,
		GetProductHandler:       catalog.GetProductHandler,
		SearchProductsHandler:   catalog.SearchProductsHandler,
		FeaturedProductsHandler: catalog.FeaturedProductsHandler,
	}
}
