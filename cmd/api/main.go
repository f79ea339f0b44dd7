package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/marketplace-service/internal/api/http"
	"github.com/spec-kit/marketplace-service/internal/api/http/handlers"
	"github.com/spec-kit/marketplace-service/internal/auth"
	"github.com/spec-kit/marketplace-service/internal/config"
	"github.com/spec-kit/marketplace-service/internal/events"
	"github.com/spec-kit/marketplace-service/internal/observability"
	"github.com/spec-kit/marketplace-service/internal/persistence"
	"github.com/spec-kit/marketplace-service/internal/repository"
	"github.com/spec-kit/marketplace-service/internal/service"
	"github.com/spec-kit/marketplace-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer store.Close()

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()
	if redis.Enabled() {
		store.Checks["redis"] = redis
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	colls := store.Collections
	tokenManager := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL())
	roleService := service.NewRoleService(colls.Users)
	categoryService := service.NewCategoryService(
		colls.Categories,
		repository.NewCategoryCache(redis.Client, cfg.Redis.CategoryTTL()),
		logger,
	)

	if cfg.Seed.CategoryFile != "" {
		if _, err := categoryService.SeedFromFile(ctx, cfg.Seed.CategoryFile); err != nil {
			logger.Fatal("failed to seed categories", zap.String("file", cfg.Seed.CategoryFile), zap.Error(err))
		}
	}

	metrics := observability.NewMetrics()
	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.CORSAllowOrigins)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:                 handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store.Checks, metrics),
		Token:                  handlers.NewTokenHandler(service.NewTokenService(colls.Users, tokenManager)),
		Users:                  handlers.NewUsersHandler(service.NewUserService(colls.Users, dispatcher), roleService),
		Categories:             handlers.NewCategoriesHandler(categoryService),
		Products:               handlers.NewProductsHandler(service.NewProductService(colls.Products, dispatcher)),
		Orders:                 handlers.NewOrdersHandler(service.NewOrderService(colls.Orders, dispatcher)),
		AuthMiddleware:         auth.NewAuthMiddleware(tokenManager),
		Roles:                  roleService,
		AdvertiseRequireSeller: cfg.Auth.AdvertiseRequireSeller,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("store", cfg.Store.Driver))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
