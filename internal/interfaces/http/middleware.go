package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// RequestLogger registra método, ruta, estado y duración de cada petición.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("session_id", GetSessionID(c)).
			Msg("petición HTTP")
		return err
	}
}

// HTTPMetrics contador de peticiones del BFF por ruta registrada.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
}

// NewHTTPMetrics registra el colector en reg (nil = sin registrar).
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "licores_http_requests_total",
			Help: "Peticiones HTTP atendidas por la tienda.",
		}, []string{"method", "route", "status"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests)
	}
	return m
}

// Middleware cuenta cada petición con la plantilla de ruta (no la URL concreta).
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		route := c.Route().Path
		m.requests.WithLabelValues(c.Method(), route, strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}
