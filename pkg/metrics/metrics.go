// Package metrics owns the Prometheus registry for the service and the HTTP
// instrumentation shared by every module.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// System exposes the registry and HTTP collectors.
type System struct {
	namespace string
	registry  *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a registry with process and Go runtime collectors plus HTTP
// request metrics under the configured namespace.
func New(cfg *Config) *System {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &System{
		namespace: cfg.Namespace,
		registry:  reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "http_requests_total",
				Help:      "Number of HTTP requests by method and status code.",
			},
			[]string{"method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	reg.MustRegister(s.requests, s.duration)
	return s
}

// Namespace returns the metric namespace domain collectors should use.
func (s *System) Namespace() string {
	return s.namespace
}

// Registerer returns the registry for domain collectors.
func (s *System) Registerer() prometheus.Registerer {
	return s.registry
}

// Gatherer returns the registry for inspection.
func (s *System) Gatherer() prometheus.Gatherer {
	return s.registry
}

// Handler serves the exposition format for the registry.
func (s *System) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency.
func (s *System) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			s.requests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
			s.duration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
