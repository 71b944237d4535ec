// internal/middleware/request_log.go
package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogMiddleware logs every request with its status and duration
func RequestLogMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		log.Printf("➡️ %s %s → %d (%s)", c.Method(), c.Path(), status, time.Since(start).Round(time.Millisecond))
		return err
	}
}
