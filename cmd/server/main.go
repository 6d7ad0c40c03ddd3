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

	"performance-tracker-backend/internal/api/routes"
	"performance-tracker-backend/internal/config"
	"performance-tracker-backend/internal/database"
	"performance-tracker-backend/internal/logger"
	"performance-tracker-backend/internal/repository"
	"performance-tracker-backend/internal/snapshot"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "performance-tracker-backend/docs" // registers the swagger spec
)

const shutdownTimeout = 15 * time.Second

//	@title			Team Performance Tracker API
//	@version		1.0
//	@description	Backend API for tracking team members, tasks and performance ratings, with derived statistics, leaderboards and PDF reports.

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	if err := run(cfg); err != nil {
		logger.WithComponent("server").WithError(err).Fatal("Server stopped")
	}
}

// run serves until SIGINT/SIGTERM, then drains requests and stops the change listener.
func run(cfg *config.Config) error {
	log := logger.WithComponent("server")

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:      database.ParseLogLevel(cfg.DatabaseLogLevel),
		NotifyChannel: cfg.NotifyChannel,
	})
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := snapshot.NewStore(
		repository.NewMemberRepository(db),
		repository.NewTaskRepository(db),
		repository.NewRatingRepository(db),
	)
	store.Subscribe(snapshot.LogPublished(logger.WithComponent("snapshot")))
	// Serving an empty snapshot over a populated database would report wrong statistics.
	if err := store.Refresh(ctx); err != nil {
		return fmt.Errorf("load statistics snapshot: %w", err)
	}

	listenerDone := make(chan struct{})
	if cfg.NotificationsEnabled() {
		reconnect := time.Duration(cfg.NotifyReconnectSec) * time.Second
		listener := snapshot.NewListener(cfg.DatabaseURL, cfg.NotifyChannel, reconnect, store)
		go func() {
			defer close(listenerDone)
			if err := listener.Run(ctx); err != nil {
				log.WithError(err).Error("Change listener stopped")
			}
		}()
	} else {
		close(listenerDone)
		log.Warn("Change notifications disabled; statistics refresh only after writes through this server")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(db, cfg, store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("Serving HTTP")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		stop()
		<-listenerDone
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	<-listenerDone
	return nil
}
