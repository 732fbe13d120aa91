package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edvin/minio-lite-admin/internal/api"
	"github.com/edvin/minio-lite-admin/internal/config"
	"github.com/edvin/minio-lite-admin/internal/core"
	"github.com/edvin/minio-lite-admin/internal/infra"
	"github.com/edvin/minio-lite-admin/internal/logging"
	"github.com/edvin/minio-lite-admin/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults to ./config.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate("server"); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	admin, err := infra.NewMinIOAdmin(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create MinIO admin client")
	}

	s3Client, err := infra.NewS3Client(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create S3 client")
	}

	srv := api.NewServer(logger, core.NewServices(admin, s3Client), cfg)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("addr", cfg.Server.Addr).
			Str("minio_url", cfg.MinIO.URL).
			Msg("starting MinIO Lite Admin server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	var metricsServer *http.Server
	if cfg.Server.MetricsAddr != "" {
		if err := metrics.RegisterAuditQueue(prometheus.DefaultRegisterer, srv.AuditPending); err != nil {
			logger.Warn().Err(err).Msg("failed to register audit queue gauge")
		}
		metricsServer = metrics.NewServer(cfg.Server.MetricsAddr)
		go func() {
			logger.Info().Str("addr", cfg.Server.MetricsAddr).Msg("starting metrics server")
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("metrics server shutdown failed")
		}
	}
}
