package metrics

import (
	"time"

	"github.com/DanRulev/ordkort.git/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation attempt outcomes.
const (
	OutcomeFailed    = "failed"
	OutcomeEmpty     = "empty"
	OutcomeDuplicate = "duplicate"
	OutcomeUnique    = "unique"
)

type Metrics interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	ObserveGeneration(outcome string)
	IncClozeFallback()
	IncCASConflict()
	IncExercises()
}

type Provider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	generations     *prometheus.CounterVec
	clozeFallbacks  prometheus.Counter
	casConflicts    prometheus.Counter
	exercises       prometheus.Counter
}

// New registers the collectors on reg. With metrics disabled it returns a
// no-op implementation and registers nothing.
func New(cfg config.MetricsConfig, reg prometheus.Registerer) Metrics {
	if !cfg.Enabled {
		return Noop{}
	}

	factory := promauto.With(reg)
	return &Provider{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ordkort_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ordkort_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		generations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ordkort_example_generations_total",
			Help: "Example generation attempts by outcome",
		}, []string{"outcome"}),

		clozeFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "ordkort_cloze_fallbacks_total",
			Help: "Cloze exercises served from a cached example after generation failed",
		}),

		casConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "ordkort_notes_conflicts_total",
			Help: "Concurrent example writes that had to be re-merged",
		}),

		exercises: factory.NewCounter(prometheus.CounterOpts{
			Name: "ordkort_exercises_total",
			Help: "Completed exercises",
		}),
	}
}

func (m *Provider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *Provider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *Provider) ObserveGeneration(outcome string) {
	m.generations.WithLabelValues(outcome).Inc()
}

func (m *Provider) IncClozeFallback() {
	m.clozeFallbacks.Inc()
}

func (m *Provider) IncCASConflict() {
	m.casConflicts.Inc()
}

func (m *Provider) IncExercises() {
	m.exercises.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

type Noop struct{}

func (Noop) IncRequestsTotal(string, int)                {}
func (Noop) ObserveRequestDuration(string, time.Duration) {}
func (Noop) ObserveGeneration(string)                    {}
func (Noop) IncClozeFallback()                           {}
func (Noop) IncCASConflict()                             {}
func (Noop) IncExercises()                               {}
