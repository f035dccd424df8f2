// Command crimemap builds an interactive Leaflet map of Cambridge crime
// incidents from the crime log CSV. Markers are colored by crime type and
// sized by the total incident count at each location.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/couchcryptid/crime-data-map/internal/adapter/csvfile"
	"github.com/couchcryptid/crime-data-map/internal/adapter/htmlfile"
	"github.com/couchcryptid/crime-data-map/internal/adapter/mapbox"
	"github.com/couchcryptid/crime-data-map/internal/config"
	"github.com/couchcryptid/crime-data-map/internal/domain"
	"github.com/couchcryptid/crime-data-map/internal/observability"
	"github.com/couchcryptid/crime-data-map/internal/pipeline"
	"github.com/couchcryptid/crime-data-map/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Reverse-geocoding backfill for popup place names (feature-flagged via
	// MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		logger.Info("mapbox enrichment enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	}

	p := pipeline.New(
		csvfile.NewReader(cfg.CSVPath, logger),
		render.NewRenderer(cfg.MapZoom),
		htmlfile.NewWriter(cfg.OutputPath, logger),
		geocoder,
		logger,
		metrics,
		os.Stdout,
	)

	if _, err := p.Run(context.Background()); err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Error("metrics textfile write failed", "error", err, "path", cfg.MetricsTextfile)
			os.Exit(1)
		}
		logger.Info("metrics written", "path", cfg.MetricsTextfile)
	}
}
