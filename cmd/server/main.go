package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prakharmi/finance-assistant/internal/config"
	"github.com/prakharmi/finance-assistant/internal/database"
	"github.com/prakharmi/finance-assistant/internal/handlers"
	custommw "github.com/prakharmi/finance-assistant/internal/middleware"
	"github.com/prakharmi/finance-assistant/internal/repositories"
	"github.com/prakharmi/finance-assistant/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.Auth)
	queryService := services.NewTransactionQueryService(transactionRepo, categoryRepo, metrics)
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, metrics)
	analyticsService := services.NewAnalyticsService(transactionRepo, categoryRepo, metrics)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService, queryService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	authHandler := handlers.NewAuthHandler()
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Public endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	requireAuth := custommw.RequireAuth(tokenService, userRepo)

	auth := e.Group("/auth", requireAuth)
	auth.GET("/me", authHandler.Me)

	api := e.Group("/api", requireAuth)

	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/add-multiple", transactionHandler.BulkImport)
	transactions.GET("/categories", transactionHandler.ListCategories)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	analytics := api.Group("/analytics")
	analytics.GET("/summary", analyticsHandler.GetSummary)
	analytics.GET("/expenses-by-category", analyticsHandler.GetExpensesByCategory)
	analytics.GET("/monthly-summary", analyticsHandler.GetMonthlySummary)
	analytics.GET("/category-trend", analyticsHandler.GetCategoryTrend)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}

	slog.Info("Server stopped")
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
