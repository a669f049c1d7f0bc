package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-investment-backend/config"
	_ "go-investment-backend/docs" // Important for Swagger
	v1 "go-investment-backend/internal/delivery/http/v1"
	"go-investment-backend/internal/repository/memory"
	"go-investment-backend/internal/usecase"
	"go-investment-backend/pkg/logger"
	"go-investment-backend/pkg/mailer"
	"go-investment-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Masar Investment Site API
// @version         1.0
// @description     Backend for the bilingual marketing site: page content and contact form.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateSMTP(); err != nil {
		log.Fatalf("Refusing to start: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting investment site backend", "port", cfg.Port)

	// 3. Setup Redis (rate limiting; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable - rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Mailer
	smtpMailer := mailer.NewSMTP(cfg)

	// 5. Setup Repositories and UseCases
	contentRepo := memory.NewContentRepository()

	validate := validator.New()
	contactUC := usecase.NewContactUsecase(smtpMailer, validate)
	contentUC := usecase.NewContentUsecase(contentRepo)
	healthUC := usecase.NewHealthUsecase()

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ContentUC: contentUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
