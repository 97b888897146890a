package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"solcraft-backend/metrics"
)

// MetricsMiddleware records request counts and latency per route. The route
// pattern, not the raw path, keeps label cardinality bounded.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		method := c.Method()
		metrics.HTTPRequestsTotal.WithLabelValues(
			method, path, strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).
			Observe(time.Since(start).Seconds())

		return err
	}
}
