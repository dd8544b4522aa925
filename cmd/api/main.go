package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/crimewatch/report-service/internal/adapter/http"
	"github.com/crimewatch/report-service/internal/adapter/nominatim"
	"github.com/crimewatch/report-service/internal/config"
	"github.com/crimewatch/report-service/internal/domain"
	"github.com/crimewatch/report-service/internal/evidence"
	"github.com/crimewatch/report-service/internal/observability"
	"github.com/crimewatch/report-service/internal/service"
	"github.com/crimewatch/report-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open report store", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}

	ev, err := evidence.NewStorage(cfg.UploadDir, nil)
	if err != nil {
		logger.Error("failed to init evidence storage", "error", err, "dir", cfg.UploadDir)
		os.Exit(1)
	}

	// Reverse geocoding is feature-flagged; submissions work without it.
	var geocoder domain.Geocoder
	if cfg.GeocoderEnabled {
		client := nominatim.NewClient(cfg.GeocoderURL, cfg.GeocoderTimeout, logger)
		geocoder = nominatim.NewCachedGeocoder(client, cfg.GeocoderCacheSize, metrics.GeocodeCache)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("reverse geocoding enabled", "cache_size", cfg.GeocoderCacheSize, "timeout", cfg.GeocoderTimeout)
	} else {
		logger.Info("reverse geocoding disabled")
	}

	svc := service.New(st, ev, geocoder, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := st.Close(); err != nil {
		logger.Error("report store close error", "error", err)
	}
}
