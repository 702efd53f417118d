package handler

import "github.com/gofiber/fiber/v2"

// HealthCheck reports process liveness. The service keeps no stateful
// dependencies to probe; remote capabilities are only exercised per request.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"message": "Server is running",
		})
	}
}
