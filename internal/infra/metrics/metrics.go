// Package metrics exposes gateway counters through prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"mutant-admin/config"
	"mutant-admin/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mutant_admin"

// Recorder implements service.MetricsRecorder on a dedicated registry.
type Recorder struct {
	registry *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	decisions        *prometheus.CounterVec
	sessionEvents    *prometheus.CounterVec
}

// NewRecorder registers the gateway collectors on a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of calls made to the backend",
			},
			[]string{"method", "route", "status"},
		),
		upstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Duration of backend calls in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "moderation_decisions_total",
				Help:      "Total number of moderation decisions accepted by the backend",
			},
			[]string{"resource", "decision"},
		),
		sessionEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_events_total",
				Help:      "Total number of login, logout and rejected token events",
			},
			[]string{"event"},
		),
	}
}

// New returns a recorder when metrics are enabled and a no-op otherwise.
func New(cfg *config.Config) service.MetricsRecorder {
	if !cfg.Metrics.Enabled {
		return Noop()
	}

	return NewRecorder()
}

func (r *Recorder) ObserveUpstream(method, route string, status int, elapsed time.Duration) {
	r.upstreamRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.upstreamDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Recorder) CountDecision(resource, decision string) {
	r.decisions.WithLabelValues(resource, decision).Inc()
}

func (r *Recorder) CountSessionEvent(event string) {
	r.sessionEvents.WithLabelValues(event).Inc()
}

// Handler serves the registry in the prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the registry for tests and custom exporters.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

type noopRecorder struct{}

// Noop returns a recorder that discards everything.
func Noop() service.MetricsRecorder {
	return noopRecorder{}
}

func (noopRecorder) ObserveUpstream(string, string, int, time.Duration) {}

func (noopRecorder) CountDecision(string, string) {}

func (noopRecorder) CountSessionEvent(string) {}
