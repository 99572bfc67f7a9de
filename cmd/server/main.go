package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/bharatha-dev/brainly-server/internal/api"
	"github.com/bharatha-dev/brainly-server/internal/api/handlers"
	"github.com/bharatha-dev/brainly-server/internal/api/services"
	"github.com/bharatha-dev/brainly-server/internal/config"
	"github.com/bharatha-dev/brainly-server/internal/repositories"
)

// @title Brainly API
// @version 1.0
// @description Bookmarking service: save links, and publish a read-only share of your collection.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := repositories.Connect(cfg.DBURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}

	h := handlers.NewHandler(
		logger,
		services.NewAuthService(db, logger, []byte(cfg.JWTSecret), cfg.JWTExpiry),
		services.NewContentService(db, logger),
		services.NewShareService(db, logger),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(cfg, logger, h),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("starting Brainly server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
