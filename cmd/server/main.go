package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"rollout-config/docs"
	"rollout-config/src/config"
	"rollout-config/src/handlers"
	"rollout-config/src/services"
	"rollout-config/src/storage"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/echo-swagger"
)

//	@title			Rollout Config API
//	@version		1.0
//	@description	Feature-rollout and IP whitelist records over a key-value store.
//	@BasePath		/dev/player_rollouts
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run wires and serves until a signal arrives or the listener fails. Deferred
// cleanup runs before main exits.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Failed to close store: %v", err)
		}
	}()

	// Initialize services
	validationService, err := services.NewValidationService()
	if err != nil {
		return fmt.Errorf("failed to create validation service: %w", err)
	}

	rolloutService := services.NewRolloutService(store.Namespace(cfg.RolloutNamespace), validationService)
	whitelistService := services.NewWhitelistService(store.Namespace(cfg.WhitelistNamespace), validationService, services.UUIDGenerator{})

	e := handlers.NewServer(handlers.ServerOptions{
		APIPrefix:        cfg.APIPrefix,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		BodyLimit:        cfg.BodyLimit,
		Store:            store,
		Rollouts:         handlers.NewRolloutHandler(rolloutService),
		Whitelist:        handlers.NewWhitelistHandler(whitelistService),
	})

	// Swagger UI endpoint
	docs.SwaggerInfo.BasePath = cfg.APIPrefix
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting server on port %s (backend %s)", cfg.Port, cfg.Backend)
	return serve(ctx, e, ":"+cfg.Port, cfg.ShutdownTimeout)
}

// serve runs e until ctx is cancelled, then shuts it down. A listener that fails
// to start is returned as an error instead of exiting the process.
func serve(ctx context.Context, e *echo.Echo, addr string, shutdownTimeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}
	log.Println("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// openStore creates the key-value store selected by KV_BACKEND
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		store, err := storage.OpenSQLite(cfg.DBDriver, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendRedis:
		store, err := storage.OpenRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendMemory:
		log.Println("Using in-memory store; data is lost on restart")
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
