// Package server owns process startup and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/config"
	"github.com/gbvars988/SoilFullStack/internal/kernel"
	"github.com/gbvars988/SoilFullStack/pkg/cache"
	"github.com/gbvars988/SoilFullStack/pkg/database"
	"github.com/gbvars988/SoilFullStack/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Run boots the application and blocks until SIGINT/SIGTERM, then drains
// in-flight requests before returning.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Setup()

	db, err := database.Connect()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}

	if uri := config.LogMongoURI(); uri != "" {
		sink, err := logger.EnableMongoSink(uri, config.LogMongoDatabase(), config.LogMongoCollection())
		if err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		} else {
			defer sink.Close()
		}
	}

	return serve(db)
}

func serve(db *gorm.DB) error {
	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           kernel.Build(db).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("server stopped")
	return nil
}
