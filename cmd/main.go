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

	"github.com/yamui/generator-backend/internal/assets"
	"github.com/yamui/generator-backend/internal/http/handlers"
	"github.com/yamui/generator-backend/internal/platform/envutil"
	"github.com/yamui/generator-backend/internal/platform/logger"
	"github.com/yamui/generator-backend/internal/server"
)

func main() {
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := assets.FromEnv(log)
	if cfg.Root == "" {
		log.Warn("YAMUI_ASSET_ROOT is not set, uploads and file serving are disabled")
	}

	var codec assets.ThumbnailCodec = assets.ImageCodec{}
	if envutil.Flag("YAMUI_DISABLE_THUMBNAILS") {
		codec = assets.NopCodec{}
		log.Info("thumbnail derivation disabled")
	}

	assetService := assets.NewService(cfg, log, codec)

	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		AssetHandler:   handlers.NewAssetHandler(log, assetService),
		ProjectHandler: handlers.NewProjectHandler(log),
	})

	addr := ":" + envutil.String("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
