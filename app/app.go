// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/derangga/laundry-app-sub001/config"
	"github.com/derangga/laundry-app-sub001/db"
	"github.com/derangga/laundry-app-sub001/handler"
	"github.com/derangga/laundry-app-sub001/logger"
	"github.com/derangga/laundry-app-sub001/ratelimit"
	"github.com/derangga/laundry-app-sub001/repository"
	"github.com/derangga/laundry-app-sub001/router"
	"github.com/derangga/laundry-app-sub001/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations", db.MigrationURL()); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	// appCtx owns background workers: canceling it stops the rate limit
	// sweeper during shutdown.
	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Wiring All Layers Together ---
	cfg := config.AppConfig

	userRepo := repository.NewUserRepository(database)
	tokenRepo := repository.NewTokenRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	catalogRepo := repository.NewCatalogRepository(database)
	orderRepo := repository.NewOrderRepository(database)

	hasher := service.NewPasswordHasher(cfg.Password.BcryptCost)
	codec := service.NewJWTCodec(cfg.JWT.SecretKey, cfg.JWT.AccessTTL)
	authService := service.NewAuthService(userRepo, tokenRepo, hasher, codec, cfg.JWT.RefreshTTL)
	userService := service.NewUserService(userRepo, hasher)
	customerService := service.NewCustomerService(customerRepo)
	catalogService := service.NewCatalogService(catalogRepo, redisClient)
	orderService := service.NewOrderService(orderRepo, customerRepo, catalogRepo)

	limiter := ratelimit.New()
	limiter.StartSweeper(appCtx, cfg.RateLimit.SweepInterval)

	// Session table maintenance: expired rows are already unusable, this
	// just keeps the table from growing forever.
	go func() {
		t := time.NewTicker(12 * time.Hour)
		defer t.Stop()
		for {
			select {
			case <-appCtx.Done():
				return
			case <-t.C:
				if deleted, err := tokenRepo.DeleteExpired(); err == nil && deleted > 0 {
					logger.Log.WithField("deleted", deleted).Info("Purged expired refresh sessions")
				}
			}
		}
	}()

	authMW := handler.NewAuthMiddleware(authService)
	rlMW := handler.NewRateLimitMiddleware(limiter)

	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService),
		Customer: handler.NewCustomerHandler(customerService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Order:    handler.NewOrderHandler(orderService),
	}
	strategies := router.Strategies{
		Login:         toStrategy(cfg.RateLimit.Login),
		Refresh:       toStrategy(cfg.RateLimit.Refresh),
		Authenticated: toStrategy(cfg.RateLimit.Authenticated),
		Public:        toStrategy(cfg.RateLimit.Public),
	}

	r := router.NewRouter(handlers, authMW, rlMW, strategies)

	// --- Start the Server with Graceful Shutdown ---
	port := cfg.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

func toStrategy(s config.Strategy) ratelimit.Strategy {
	return ratelimit.Strategy{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Window:      s.Window,
	}
}
