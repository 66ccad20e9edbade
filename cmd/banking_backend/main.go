package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/rabi993/banking-system/internal/core/services"
	"github.com/rabi993/banking-system/internal/handlers"
	"github.com/rabi993/banking-system/internal/middleware"
	"github.com/rabi993/banking-system/internal/platform/config"
)

// @title Banking System API
// @version 1.0
// @description In-memory banking ledger with user and admin operation sets.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The whole bank lives in memory for the lifetime of the process.
	verifier := services.NewFixedCredentialVerifier(cfg.AdminName, cfg.AdminPassword)
	container := services.NewServiceContainer(verifier)

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
