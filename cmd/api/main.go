package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"papertrade/internal/config"
	"papertrade/internal/database"
	"papertrade/internal/handlers"
	"papertrade/internal/logger"
	"papertrade/internal/middleware"
	"papertrade/internal/quotes"
	"papertrade/internal/services"
	"papertrade/internal/store"
	"papertrade/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "papertrade/internal/docs" // Import swagger docs
)

// @title           Papertrade API
// @version         1.0
// @description     Papertrade is a simulated stock trading application that lets users buy and sell shares with virtual money and track their portfolio against live market prices.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Create database manager and run migrations
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	db := dbManager.DB()

	// Price resolution: live quotes with a last-known-good cache fallback
	quoteClient := quotes.NewTwelveDataClient(
		&http.Client{Timeout: appConfig.QuoteTimeout},
		appConfig.QuoteBaseURL,
		appConfig.QuoteAPIKey,
	)
	resolver := quotes.NewResolver(quoteClient, quotes.NewCache(config.DefaultPrices), log)

	// Initialize stores and services
	holdingsStore := store.NewHoldingsStore(db)
	catalogStore := store.NewCatalogStore(db)

	userService := services.NewUserService(db)
	portfolioService, err := services.NewPortfolioService(holdingsStore, resolver)
	if err != nil {
		return fmt.Errorf("failed to load holdings: %w", err)
	}
	stockService := services.NewStockService(catalogStore, resolver)

	// Refresh the stock catalog if stale, then keep it fresh on a schedule
	refresher := services.NewCatalogRefresher(quoteClient, catalogStore, appConfig.CatalogMaxAge, log)
	if err := refresher.RefreshIfStale(context.Background()); err != nil {
		log.Warnw("Initial catalog refresh failed, continuing with existing catalog", "error", err)
	}
	cronRunner, err := refresher.Start(appConfig.CatalogRefreshCron)
	if err != nil {
		return fmt.Errorf("failed to start catalog refresh schedule: %w", err)
	}
	defer cronRunner.Stop()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	stockHandler := handlers.NewStockHandler(stockService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	stocks := v1.Group("/stocks")
	stocks.GET("", stockHandler.ListStocks)
	stocks.GET("/search", stockHandler.SearchStocks)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Portfolio routes
	portfolio := protected.Group("/portfolio")
	portfolio.GET("", portfolioHandler.GetPortfolio)
	portfolio.POST("/buy", portfolioHandler.BuyStock)
	portfolio.POST("/sell", portfolioHandler.SellStock)

	log.Infof("Starting Papertrade backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
