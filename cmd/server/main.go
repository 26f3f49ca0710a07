package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oliverjumpertz/link-shortener/internal/config"
	"github.com/oliverjumpertz/link-shortener/internal/database"
	"github.com/oliverjumpertz/link-shortener/internal/middleware"
	"github.com/oliverjumpertz/link-shortener/internal/routes"
	"github.com/oliverjumpertz/link-shortener/pkg/logger"
	"github.com/oliverjumpertz/link-shortener/pkg/metrics"
)

func main() {
	config.LoadConfig()

	env := config.AppConfig.Env
	logger.Init(env)
	logger.Info().Str("environment", env).Msg("Starting link-shortener...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.Migrate()

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	routes.RegisterLinkRoutes(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	srv := &http.Server{
		Addr:         ":" + config.AppConfig.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", config.AppConfig.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
