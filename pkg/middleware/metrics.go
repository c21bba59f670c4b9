package middleware

import (
	"strconv"
	"time"

	"github.com/NeuralTrust/TrustTag/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Route templates keep label cardinality bounded.
		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		prometheus.RequestTotal.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()
		if prometheus.Config.EnableLatency {
			prometheus.RequestLatency.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
		}

		m.logger.WithFields(logrus.Fields{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   status,
			"duration": time.Since(start).String(),
		}).Debug("request completed")
		return err
	}
}
