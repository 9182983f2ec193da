package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig is the service configuration, read from the environment.
type AppConfig struct {
	Port string

	// LiveDataEnabled toggles the external providers. When false every
	// body is simulated, which is also the fallback whenever a provider
	// fails.
	LiveDataEnabled bool

	// NASAAPIKey authenticates the Mars feed; empty uses the demo key.
	NASAAPIKey string

	// EarthLat/EarthLon pick the observation point for live Earth weather.
	EarthLat float64
	EarthLon float64

	// RefreshInterval controls how often the scheduler refetches live data.
	RefreshInterval time.Duration

	// CacheTTL bounds how stale a cached live snapshot may be served.
	CacheTTL time.Duration

	// In-memory store retention.
	StoreMaxHistory int
	StoreMaxAge     time.Duration

	// HTTPTimeout applies to outbound provider calls.
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LiveDataEnabled = getenvBool("LIVE_DATA_ENABLED", true)
	cfg.NASAAPIKey = os.Getenv("NASA_API_KEY")

	cfg.EarthLat = getenvFloat("EARTH_LAT", 51.4779) // Greenwich
	cfg.EarthLon = getenvFloat("EARTH_LON", 0.0)

	interval, err := parseDurationEnv("REFRESH_INTERVAL", "15m")
	if err != nil {
		return nil, err
	}
	cfg.RefreshInterval = interval

	ttl, err := parseDurationEnv("CACHE_TTL", "30m")
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = ttl

	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96)

	maxAge, err := parseDurationEnv("STORE_MAX_AGE", "24h")
	if err != nil {
		return nil, err
	}
	cfg.StoreMaxAge = maxAge

	timeout, err := parseDurationEnv("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
