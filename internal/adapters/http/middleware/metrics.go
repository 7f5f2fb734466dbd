package middleware

import (
	"strconv"
	"time"

	"library-management/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records HTTP request metrics
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Use the route pattern (not actual path) to avoid cardinality explosion
		route := "unknown"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Method(),
			route,
			strconv.Itoa(status),
		).Observe(time.Since(start).Seconds())

		return err
	}
}
