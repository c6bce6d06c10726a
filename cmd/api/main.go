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

	"golang-stock-advisor/internal/api/config"
	delivery "golang-stock-advisor/internal/api/delivery/http"
	"golang-stock-advisor/internal/api/repository"
	"golang-stock-advisor/internal/api/service"
	"golang-stock-advisor/pkg/logger"
	"golang-stock-advisor/pkg/postgres"
	"golang-stock-advisor/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the stock advisor API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Stock Advisor API", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	tokenTTL, err := time.ParseDuration(cfg.JWT.ExpiryIn)
	if err != nil {
		appLogger.Fatal("Invalid jwt expiry", logger.ErrorField(err))
	}
	cacheTTL, err := time.ParseDuration(cfg.Cache.MarketDataTTL)
	if err != nil {
		appLogger.Fatal("Invalid market data cache TTL", logger.ErrorField(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	portfolioRepo := repository.NewPortfolioRepository(db.DB)
	transactionRepo := repository.NewTransactionRepository(db.DB)
	marketDataRepo := repository.NewMarketDataRepository(db.DB)
	recommendationRepo := repository.NewRecommendationRepository(db.DB)
	riskAnalysisRepo := repository.NewRiskAnalysisRepository(db.DB)

	weaviateRepo, err := repository.NewWeaviateRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize vector gateway", logger.ErrorField(err))
	}
	aiRepo, err := repository.NewOllamaAIRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize text generator client", logger.ErrorField(err))
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT.Secret, tokenTTL, appLogger)
	portfolioSvc := service.NewPortfolioService(portfolioRepo, appLogger)
	transactionSvc := service.NewTransactionService(transactionRepo, appLogger)
	marketDataSvc := service.NewMarketDataService(marketDataRepo, redisClient.Client, cacheTTL, appLogger)
	recommendationSvc := service.NewRecommendationService(recommendationRepo, aiRepo, appLogger)
	riskAnalysisSvc := service.NewRiskAnalysisService(riskAnalysisRepo, aiRepo, appLogger)
	vectorSvc := service.NewVectorService(weaviateRepo, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Public routes
	authHandler := delivery.NewAuthHandler(authSvc, appLogger)
	authHandler.RegisterRoutes(e)

	// Authenticated routes
	protected := e.Group("", delivery.JWTAuth(cfg.JWT.Secret))
	delivery.NewPortfolioHandler(portfolioSvc, appLogger).RegisterRoutes(protected)
	delivery.NewTransactionHandler(transactionSvc, appLogger).RegisterRoutes(protected)
	delivery.NewMarketDataHandler(marketDataSvc, appLogger).RegisterRoutes(protected)
	delivery.NewRecommendationHandler(recommendationSvc, appLogger).RegisterRoutes(protected)
	delivery.NewRiskAnalysisHandler(riskAnalysisSvc, appLogger).RegisterRoutes(protected)
	delivery.NewVectorHandler(vectorSvc, appLogger).RegisterRoutes(protected)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func main() {
	rootCmd := &cobra.Command{Use: "api"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api CLI: %s\n", err)
		os.Exit(1)
	}
}
