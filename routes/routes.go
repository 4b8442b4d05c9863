package routes

import (
	"time"

	"finalprojectapi/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTableRoutes registers table registry endpoints.
func RegisterTableRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	tables := r.Group("/tables")
	{
		tables.GET("", hb.ListTablesHandler)
		// Static segment takes priority over :id.
		tables.GET("/available", hb.AvailableTablesHandler)
		tables.GET("/:id", hb.GetTableHandler)
	}
}

// RegisterReservationRoutes registers reservation endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	reservations := r.Group("/reservations")
	{
		reservations.GET("", hb.ListReservationsHandler)
		reservations.POST("", hb.CreateReservationHandler)
		reservations.DELETE("/:id", hb.DeleteReservationHandler)
	}
}

// RegisterCatalogRoutes registers brand and product endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/brands", hb.ListBrandsHandler)
		api.GET("/brands/:id", hb.GetBrandHandler)

		api.GET("/products", hb.ListProductsHandler)
		api.GET("/products/search", hb.SearchProductsHandler)
		api.GET("/products/featured", hb.FeaturedProductsHandler)
		api.GET("/products/:id", hb.GetProductHandler)
	}
}

// RegisterHealthRoute registers the banner and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/health", hb.HealthHandler)
}

// CORS builds the cors middleware; a "*" entry allows every origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	r.Use(CORS(origins))

	RegisterHealthRoute(r, hb)
	RegisterTableRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
}
