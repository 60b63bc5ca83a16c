package middleware

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"backendservice/internal/logging"
)

// Logger logs each HTTP request as one JSON line on stdout.
func Logger(loc *time.Location) fiber.Handler {
	return LoggerWithWriter(os.Stdout, loc)
}

// LoggerWithWriter is Logger with a custom destination.
// Fields: request_id (from RequestID), method, path, status, latency in milliseconds.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	log := logging.New(w, loc)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// An error returned by the handler has not been written yet; ask the error
		// handler's view of the status instead of the default 200.
		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}
		rid, _ := c.Locals(RequestIDLocalKey).(string)

		log.Info("http_request",
			"request_id", rid,
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", float64(time.Since(start).Microseconds())/1000,
		)

		return err
	}
}

func statusFromError(err error) int {
	if e, ok := err.(*fiber.Error); ok {
		return e.Code
	}
	return fiber.StatusInternalServerError
}
