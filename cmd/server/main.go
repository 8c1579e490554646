package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/azurhotel/booking-backend/internal/app"
	"github.com/azurhotel/booking-backend/internal/config"
	"github.com/azurhotel/booking-backend/internal/db"
	"github.com/azurhotel/booking-backend/internal/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.LogLevel, cfg.IsProduction)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Apply schema migrations before serving
	if err := db.Migrate(cfg.DBDSN, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db")
	}
	defer pool.Close()

	// Init all modules
	container, err := app.NewContainer(app.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		DBPool:           pool,
		JWTSecret:        cfg.JWTSecret,
		JWTTTL:           cfg.JWTAccessTokenTTL,
		BcryptCost:       cfg.BcryptCost,
		PhotoStoragePath: cfg.PhotoStoragePath,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init application")
	}

	// Bootstrap admin account so the back office is reachable on a fresh DB
	if cfg.AdminEmail != "" {
		if err := container.UserService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure admin account")
		}
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("server running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
