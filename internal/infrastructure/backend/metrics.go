package backend

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados posibles de una llamada al backend (etiqueta outcome).
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected" // 4xx con o sin cuerpo estructurado
	OutcomeError    = "error"    // 5xx o fallo de transporte
)

// Metrics colectores Prometheus de las llamadas al backend.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics crea y registra los colectores. Con reg nil no se registran (tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "licores",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Llamadas a la API REST de la tienda por recurso, método y resultado.",
		}, []string{"resource", "method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "licores",
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Latencia de las llamadas a la API REST de la tienda.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource", "method"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

// Requests expone el contador (tests y dashboards internos).
func (m *Metrics) Requests() *prometheus.CounterVec { return m.requests }

func (m *Metrics) observe(resource, method, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(resource, method, outcome).Inc()
	m.duration.WithLabelValues(resource, method).Observe(elapsed.Seconds())
}
