package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all tool settings, populated from environment variables.
// The defaults reproduce a plain run with no environment set: read
// crimedata.csv from the working directory, write crime_map.html next to it.
type Config struct {
	CSVPath    string
	OutputPath string
	LogLevel   string
	LogFormat  string
	MapZoom    int

	// Prometheus textfile export path, empty = disabled.
	MetricsTextfile string

	// Mapbox reverse-geocoding enrichment.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("CSV_PATH", "crimedata.csv")
	v.SetDefault("OUTPUT_PATH", "crime_map.html")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("MAP_ZOOM", 12)
	v.SetDefault("METRICS_TEXTFILE", "")
	v.SetDefault("MAPBOX_TIMEOUT", "5s")
	v.SetDefault("MAPBOX_CACHE_SIZE", 1000)

	mapboxTimeout, err := time.ParseDuration(v.GetString("MAPBOX_TIMEOUT"))
	if err != nil || mapboxTimeout <= 0 {
		return nil, errors.New("invalid MAPBOX_TIMEOUT")
	}

	mapboxToken := v.GetString("MAPBOX_TOKEN")
	mapboxEnabled := mapboxToken != ""
	if v.IsSet("MAPBOX_ENABLED") {
		mapboxEnabled = v.GetBool("MAPBOX_ENABLED")
	}

	cfg := &Config{
		CSVPath:         v.GetString("CSV_PATH"),
		OutputPath:      v.GetString("OUTPUT_PATH"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		MapZoom:         v.GetInt("MAP_ZOOM"),
		MetricsTextfile: v.GetString("METRICS_TEXTFILE"),
		MapboxToken:     mapboxToken,
		MapboxEnabled:   mapboxEnabled,
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: v.GetInt("MAPBOX_CACHE_SIZE"),
	}

	if cfg.CSVPath == "" {
		return nil, errors.New("CSV_PATH is required")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OUTPUT_PATH is required")
	}
	if cfg.MapZoom < 1 || cfg.MapZoom > 19 {
		return nil, fmt.Errorf("MAP_ZOOM must be between 1 and 19, got %d", cfg.MapZoom)
	}
	if cfg.MapboxEnabled && cfg.MapboxToken == "" {
		return nil, errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}
	if cfg.MapboxCacheSize < 1 {
		return nil, errors.New("MAPBOX_CACHE_SIZE must be positive")
	}

	return cfg, nil
}
