// File: finalprojectapi/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finalprojectapi/config"
	"finalprojectapi/database"
	"finalprojectapi/database/repository"
	"finalprojectapi/handlers"
	"finalprojectapi/middleware"
	"finalprojectapi/routes"
	"finalprojectapi/services/catalog"
	"finalprojectapi/services/reservation"
	"finalprojectapi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ds, err := database.OpenStore(context.Background(), cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open document store: %v", err)
	}
	defer ds.Close()
	docStore := database.WithStoreTimeout(ds, cfg.StoreTimeout)

	healthDeps := map[string]utils.Pinger{"store": docStore}

	// repositories.
	repos := repository.New(docStore)

	// services.
	var guard reservation.BookingGuard
	if cfg.ReservationGuard {
		if err := utils.InitLockClient(cfg); err != nil {
			logger.Sugar().Fatalf("main: reservation guard enabled but redis is unavailable: %v", err)
		}
		defer utils.LockClient.Close()
		guard = reservation.NewRedisGuard(utils.LockClient, 10*time.Second)
		healthDeps["redis"] = utils.PingFunc(func(ctx context.Context) error {
			return utils.LockClient.Ping(ctx).Err()
		})
		logger.Info("Reservation guard enabled", zap.String("redis", cfg.RedisAddr))
	}
	reservationService := reservation.NewDefaultReservationService(repos.Tables, repos.Reservations, guard)
	catalogService := catalog.NewDefaultCatalogService(repos.Brands, repos.Products)

	// handlers.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewTableHandler(reservationService),
		handlers.NewReservationHandler(reservationService),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewHealthHandler(healthDeps),
	)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}

	limiterStore := middleware.NewRateLimiterStore(cfg.MaxRequestsPerMin)
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go limiterStore.RunCleanup(cleanupCtx, time.Minute, 10*time.Minute)

	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(limiterStore))

	routes.RegisterRoutes(router, handlerBundle, cfg.CORSAllowedOrigins)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (store: %s)...", srv.Addr, cfg.StoreDriver)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
