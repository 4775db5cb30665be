package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Response messages for the storage-backed endpoints. The bodies stay
// generic; backend detail goes to the log only.
const (
	msgStorageUnavailable = "Object storage is not configured properly."
	msgStoreFailed        = "Failed to store data in object storage"
	msgListFailed         = "Failed to list files from object storage"
	msgRetrieveFailed     = "Failed to retrieve file content from object storage"
	msgFileNotFound       = "File not found"
)

// writeError writes the uniform failure body {"error": <message>}.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// ErrorHandler returns the Fiber global error handler. Anything escaping a
// handler is normalized to the same {"error": ...} shape the handlers use.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusNotFound:
			return writeError(c, status, "Resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		default:
			return writeError(c, status, "Internal server error")
		}
	}
}
