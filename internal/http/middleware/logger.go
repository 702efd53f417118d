package middleware

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger logs each HTTP request as one JSON object per line: request_id,
// method, path, status, latency_ms, and bytes_out. Summary and transcript
// content is deliberately never logged.
func Logger() fiber.Handler {
	return NewLogger(os.Stdout)
}

// NewLogger is Logger with an explicit sink, used by tests.
func NewLogger(w io.Writer) fiber.Handler {
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		_ = enc.Encode(map[string]any{
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"bytes_out":  len(c.Response().Body()),
		})

		return err
	}
}
