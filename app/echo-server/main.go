package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dabbaMarket/app/echo-server/router"
	"dabbaMarket/business/complaint"
	"dabbaMarket/business/customer"
	"dabbaMarket/business/localization"
	"dabbaMarket/business/menu"
	"dabbaMarket/business/orders"
	"dabbaMarket/business/recommend"
	"dabbaMarket/internal/middleware"
	psqlRepo "dabbaMarket/internal/repository/postgres"
	redisRepo "dabbaMarket/internal/repository/redis"
	"dabbaMarket/internal/rest"
	"dabbaMarket/pkg/config"
	"dabbaMarket/pkg/database"
	redisdb "dabbaMarket/pkg/database/redis"
	"dabbaMarket/pkg/logger"
	"dabbaMarket/pkg/metrics"
	"dabbaMarket/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Dabba Market", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Redis is optional. Without it the reset codes lose their single-use
	// guarantee and the bandit state stays process-local.
	var (
		resetRepo customer.ResetTokenRepository
		armStore  recommend.ArmStore
	)
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisdb.CloseRedisClient(redisClient)

		resetRepo = redisRepo.NewTokenRepository(redisClient)
		armStore = redisRepo.NewArmStore(redisClient)
		logger.Info("Redis connected successfully")
	}

	// Init validate
	validate := validator.New()

	// Init repo
	customerRepo := psqlRepo.NewCustomerRepository(db)
	prefRepo := psqlRepo.NewPreferenceRepository(db)
	menuRepo := psqlRepo.NewMenuRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	complaintRepo := psqlRepo.NewComplaintRepository(db)
	catalogRepo := psqlRepo.NewCatalogRepository(db)

	// Init service
	customerService := customer.NewCustomerService(customerRepo, prefRepo, resetRepo, validate, cfg.App.AppPasswordResetKey, cfg.JWT.TokenTTL)
	menuService := menu.NewMenuService(menuRepo)
	ordersService := orders.NewOrdersService(ordersRepo, menuRepo)
	complaintService := complaint.NewComplaintService(complaintRepo)
	localizationService := localization.NewLocalizationService()

	// Init recommendation engine
	engine := recommend.NewEngine(recommend.Config{
		ExploreEpsilon:         cfg.Recommender.ExploreEpsilon,
		CuisineWeight:          cfg.Recommender.CuisineWeight,
		VegetarianWeight:       cfg.Recommender.VegetarianWeight,
		DefaultLimit:           cfg.Recommender.DefaultLimit,
		CatalogLoadTimeout:     cfg.Recommender.CatalogLoadTimeout,
		CatalogRefreshInterval: cfg.Recommender.CatalogRefreshInterval,
	}, catalogRepo, armStore, nil)

	engineCtx, stopEngine := context.WithCancel(context.Background())
	defer stopEngine()

	engine.Refresh(engineCtx)
	if err := engine.ReplayInteractions(engineCtx, 1000); err != nil {
		logger.Warn("failed to replay interaction history", "error", err)
	}
	go engine.Run(engineCtx)

	// Init handler
	customerHandler := rest.NewCustomerHandler(customerService)
	menuHandler := rest.NewMenuHandler(menuService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	complaintHandler := rest.NewComplaintHandler(complaintService)
	localizationHandler := rest.NewLocalizationHandler(localizationService, cfg.App.DefaultCity)
	recommendationHandler := rest.NewRecommendationHandler(engine, customerService, ordersService, localizationService, cfg.App.DefaultCity)
	recommendationAdminHandler := rest.NewRecommendationAdminHandler(engine)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupCustomerRoutes(api, customerHandler, authRequired)
	router.SetupMenuRoutes(api, menuHandler, authRequired)
	router.SetupOrdersRoutes(api, ordersHandler, authRequired, adminOnly)
	router.SetupRecommendationRoutes(api, recommendationHandler, authRequired)
	router.SetupRecommendationAdminRoutes(api, recommendationAdminHandler, authRequired, adminOnly)
	router.SetupComplaintRoutes(api, complaintHandler, authRequired)
	router.SetupLocalizationRoutes(api, localizationHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	stopEngine()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
