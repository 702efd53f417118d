package handler

import (
	"github.com/gofiber/fiber/v2"
)

// errorResponse is the JSON error body returned for every failure.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError writes the standardized JSON error body. Messages are
// user-facing: they carry remediation guidance, not internal stack detail.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorResponse{Error: message})
}

// ErrorHandler returns a Fiber global error handler so framework-level
// failures (body limit, bad routes, panics recovered upstream) use the same
// JSON error shape as the handlers.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "Request body too large")
		case fiber.StatusNotFound:
			return writeError(c, status, "Not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		default:
			return writeError(c, status, "Internal server error")
		}
	}
}
