package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mvalencia/inventario-textil/pkg/metrics"
)

// MetricsMiddleware registra contador y duración de cada petición HTTP.
// Usa la ruta registrada (c.Route().Path) y no el path crudo, para no
// explotar la cardinalidad con los ids.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Method(), path, status).Observe(time.Since(start).Seconds())
		return err
	}
}
