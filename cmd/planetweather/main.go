package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/pocketcosmos/planetweather/internal/api/http"
	"github.com/pocketcosmos/planetweather/internal/catalog"
	"github.com/pocketcosmos/planetweather/internal/config"
	"github.com/pocketcosmos/planetweather/internal/metrics"
	"github.com/pocketcosmos/planetweather/internal/scheduler"
	"github.com/pocketcosmos/planetweather/internal/store"
	"github.com/pocketcosmos/planetweather/internal/weather"
	"github.com/pocketcosmos/planetweather/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// The catalog is built once and shared read-only by everything below.
	cat := catalog.Default()
	sim := weather.NewSimulator(cat, nil)

	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Live providers: Earth (Open-Meteo) and Mars (NASA archive). Every
	// other body is simulated, and these two fall back to simulation when
	// the upstream is down or disabled.
	var provs []weather.Provider
	if cfg.LiveDataEnabled {
		provs = append(provs, providers.NewOpenMeteoProvider(httpClient, cfg.EarthLat, cfg.EarthLon))
		provs = append(provs, providers.NewMarsArchiveProvider(httpClient, cfg.NASAAPIKey))
	} else {
		log.Println("INFO: live data disabled; all bodies simulated")
	}

	service := weather.NewService(sim, memStore, provs, cfg.CacheTTL)

	// Periodic live-data refresh keeps the cache warm.
	sched := scheduler.New(service, cfg.RefreshInterval)
	if len(provs) > 0 {
		if err := sched.Start(); err != nil {
			log.Fatalf("failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "planetweather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		metrics.HTTPRequests.WithLabelValues(
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "planetweather",
			"bodies":  cat.Len(),
		})
	})

	httpapi.RegisterRoutes(app, service)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
