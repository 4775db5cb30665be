package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"weatherarchive/internal/logger"
	"weatherarchive/internal/service"
	"weatherarchive/internal/storage"
	"weatherarchive/internal/weather"
)

// Gateway is the slice of the storage gateway the handlers need directly:
// the availability flag checked before any storage work, and the ping behind
// the health endpoint.
type Gateway interface {
	Available() bool
	Ping(ctx context.Context) error
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, gw Gateway, svc service.WeatherService) {
	app.Get("/", Home())
	app.Post("/store-weather-data", StoreWeatherData(gw, svc))
	app.Get("/list-weather-files", ListWeatherFiles(gw, svc))
	app.Get("/weather-file-content/:file_name", WeatherFileContent(gw, svc))
	app.Get("/health", HealthCheck(gw))
	app.Get("/healthz", LivenessProbe())
}

// Home returns the static endpoint directory.
//
// @Summary Endpoint directory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func Home() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Historical Weather Data API 🌤️",
			"endpoints": fiber.Map{
				"POST /store-weather-data":            "Fetch and store weather data in object storage",
				"GET /list-weather-files":             "List stored weather data files",
				"GET /weather-file-content/file_name": "Retrieve content of a specific file",
			},
		})
	}
}

// StoreWeatherData fetches historical weather data for the requested
// coordinates and date window and persists the raw document.
//
// @Summary Fetch and store historical weather data
// @Accept json
// @Produce json
// @Param query body model.WeatherQuery true "Coordinates and date window"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /store-weather-data [post]
func StoreWeatherData(gw Gateway, svc service.WeatherService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !gw.Available() {
			return writeError(c, fiber.StatusInternalServerError, msgStorageUnavailable)
		}

		q, err := parseWeatherQuery(c.Body())
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, validationMessage(err))
		}

		fileName, err := svc.Store(c.UserContext(), q)
		if err != nil {
			var ue *weather.UpstreamError
			if errors.As(err, &ue) {
				return writeError(c, fiber.StatusBadGateway, "Failed to fetch data from Open-Meteo: "+ue.Detail)
			}
			logger.Errorw("store weather data failed", "error", err)
			return writeError(c, fiber.StatusInternalServerError, msgStoreFailed)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":   "Weather data stored successfully",
			"file_name": fileName,
		})
	}
}

// ListWeatherFiles lists the names of all stored weather files.
//
// @Summary List stored weather files
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string
// @Router /list-weather-files [get]
func ListWeatherFiles(gw Gateway, svc service.WeatherService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !gw.Available() {
			return writeError(c, fiber.StatusInternalServerError, msgStorageUnavailable)
		}

		names, err := svc.ListFiles(c.UserContext())
		if err != nil {
			logger.Errorw("list weather files failed", "error", err)
			return writeError(c, fiber.StatusInternalServerError, msgListFailed)
		}
		return c.JSON(names)
	}
}

// WeatherFileContent returns the stored JSON document with the given name.
//
// @Summary Retrieve a stored weather document
// @Produce json
// @Param file_name path string true "Stored file name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /weather-file-content/{file_name} [get]
func WeatherFileContent(gw Gateway, svc service.WeatherService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !gw.Available() {
			return writeError(c, fiber.StatusInternalServerError, msgStorageUnavailable)
		}

		name := c.Params("file_name")
		doc, err := svc.FileContent(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, msgFileNotFound)
			}
			logger.Errorw("retrieve weather file failed", "file_name", name, "error", err)
			return writeError(c, fiber.StatusInternalServerError, msgRetrieveFailed)
		}

		return c.JSON(doc)
	}
}

// HealthCheck reports whether object storage is reachable.
//
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func HealthCheck(gw Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if !gw.Available() || gw.Ping(ctx) != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "object storage unavailable")
		}
		return c.JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a bare liveness check.
//
// @Summary Liveness probe
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
