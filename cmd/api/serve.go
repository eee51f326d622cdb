package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/floorboard/service/internal/admin"
	"github.com/floorboard/service/internal/config"
	"github.com/floorboard/service/internal/db"
	"github.com/floorboard/service/internal/floor"
	"github.com/floorboard/service/internal/logger"
	"github.com/floorboard/service/internal/storage"
	"github.com/floorboard/service/internal/upload"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	cfg := config.Load()
	log := logger.Setup(cfg.IsProduction())

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	// Wire dependencies: repository → service → handler
	var (
		store    floor.Store
		uploader upload.Uploader
	)
	if cfg.StorageConfigured() {
		objects, err := storage.NewMinioStorage(storage.Options{
			Endpoint:   cfg.StorageEndpoint,
			AccessKey:  cfg.StorageAccessKey,
			SecretKey:  cfg.StorageSecretKey,
			Region:     cfg.StorageRegion,
			Bucket:     cfg.StorageBucket,
			UseSSL:     cfg.StorageUseSSL,
			PublicBase: cfg.StoragePublicBase,
		})
		if err != nil {
			return fmt.Errorf("object storage init failed: %w", err)
		}
		if err := objects.EnsureBucket(ctx); err != nil {
			return fmt.Errorf("object storage init failed: %w", err)
		}
		store = floor.NewManifestStore(objects, cfg.ManifestKey)
		uploader = objects
	} else {
		store = floor.NewPostgresStore(pool)
	}
	log.Info("floor storage selected", "backend", cfg.FloorBackend())

	floorSvc := floor.NewService(floor.NewInstrumentedStore(store))
	uploadSvc := upload.NewService(uploader)
	adminSvc := admin.NewService(admin.NewRepository(pool))

	r := newRouter(routerDeps{
		logger:               log,
		floors:               floor.NewHandler(floorSvc),
		uploads:              upload.NewHandler(uploadSvc, cfg.UploadMaxBytes),
		admins:               admin.NewHandler(adminSvc),
		jwtSecret:            cfg.JWTSecret,
		requireAuthForWrites: cfg.RequireAuthForWrites,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "port", cfg.Port, "env", cfg.AppEnv)
		log.Info("swagger UI available", "url", "http://localhost:"+cfg.Port+"/swagger/")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}
	log.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
