// Package metrics owns the prometheus registry and the service's collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashkeep"

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

// Auth rejection reasons.
const (
	ReasonMissingToken   = "missing_token"
	ReasonInvalidToken   = "invalid_token"
	ReasonExpiredToken   = "expired_token"
	ReasonUnknownAccount = "unknown_account"
)

// Dashboard creation sources.
const (
	SourceRegister = "register"
	SourceLazy     = "lazy"
	SourceUpsert   = "upsert"
	SourceBackfill = "backfill"
)

// Metrics groups every collector registered on a private registry.
type Metrics struct {
	registry          *prometheus.Registry
	requestTotal      *prometheus.CounterVec
	requestLatency    *prometheus.HistogramVec
	authRejections    *prometheus.CounterVec
	dashboardsCreated *prometheus.CounterVec
}

// New registers the collectors on a fresh registry, so tests can build as many as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		authRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_rejections_total",
			Help:      "Requests refused by the authorization gate",
		}, []string{"reason"}),
		dashboardsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboards_created_total",
			Help:      "Dashboards inserted, by the path that created them",
		}, []string{"source"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestTotal,
		m.requestLatency,
		m.authRejections,
		m.dashboardsCreated,
	)

	return m
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// AuthRejections is exposed for tests.
func (m *Metrics) AuthRejections() *prometheus.CounterVec {
	return m.authRejections
}

// DashboardsCreated is exposed for tests.
func (m *Metrics) DashboardsCreated() *prometheus.CounterVec {
	return m.dashboardsCreated
}

// ObserveRequest records one finished HTTP request. All recorders are no-ops on a nil *Metrics.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.requestTotal.With(labels).Inc()
	m.requestLatency.With(labels).Observe(duration.Seconds())
}

// AuthRejected counts one refused request.
func (m *Metrics) AuthRejected(reason string) {
	if m == nil {
		return
	}
	m.authRejections.WithLabelValues(reason).Inc()
}

// DashboardCreated counts one inserted dashboard.
func (m *Metrics) DashboardCreated(source string) {
	if m == nil {
		return
	}
	m.dashboardsCreated.WithLabelValues(source).Inc()
}
