package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weatherarchive/docs"
	"weatherarchive/internal/config"
	handlers "weatherarchive/internal/http/handler"
	"weatherarchive/internal/http/middleware"
	"weatherarchive/internal/logger"
	"weatherarchive/internal/otel"
	"weatherarchive/internal/service"
	"weatherarchive/internal/storage"
	"weatherarchive/internal/weather"
)

// @title Historical Weather Data API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		logger.Fatalf("failed to initialize tracing: %v", err)
	}

	// The gateway never fails startup: a broken storage backend leaves it
	// disabled and the storage endpoints answer 500 until restart.
	gateway := storage.NewGateway(cfg.Storage)
	defer gateway.Close()

	weatherClient := weather.NewClient(cfg.Weather.Timeout)
	weatherSvc := service.NewWeatherService(weatherClient, gateway)

	app := fiber.New(fiber.Config{
		AppName:      "weatherarchive",
		ErrorHandler: handlers.ErrorHandler(),
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatalf("failed to register metrics: %v", err)
	}

	// Register global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected gateway and service
	handlers.RegisterRoutes(app, gateway, weatherSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		addr := ":" + cfg.Port
		logger.Infow("server starting", "addr", addr, "storage_driver", cfg.Storage.Driver)
		if err := app.Listen(addr); err != nil {
			logger.Errorw("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Errorw("shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Errorw("tracing shutdown failed", "error", err)
	}
	logger.Infow("server stopped")
}
