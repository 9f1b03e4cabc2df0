package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	backendRequestsTotal   *prometheus.CounterVec
	backendRequestDuration *prometheus.HistogramVec

	flowTransitionsTotal *prometheus.CounterVec
	activeSessions       *prometheus.GaugeVec
	degradedLookupsTotal prometheus.Counter
}

// New создает и регистрирует метрики в собственном registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		backendRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "backend_requests_total",
			Help:        "Total number of calls to the escape-room backend",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		backendRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_request_duration_seconds",
			Help:        "Latency of calls to the escape-room backend",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		flowTransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "flow_transitions_total",
			Help:        "State transitions of reservation and confirmation flows",
			ConstLabels: constLabels,
		}, []string{"flow", "from", "to"}),

		activeSessions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "flow_sessions_active",
			Help:        "Number of live flow sessions",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		degradedLookupsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "availability_degraded_total",
			Help:        "Availability lookups degraded to an empty slot list",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.backendRequestsTotal,
		m.backendRequestDuration,
		m.flowTransitionsTotal,
		m.activeSessions,
		m.degradedLookupsTotal,
	)

	return m
}

// Handler http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry нужен тестам для чтения значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, statusClass(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ObserveBackend(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.backendRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.backendRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) FlowTransition(flow, from, to string) {
	if m == nil {
		return
	}
	m.flowTransitionsTotal.WithLabelValues(flow, from, to).Inc()
}

func (m *Metrics) SetActiveSessions(kind string, n int) {
	if m == nil {
		return
	}
	m.activeSessions.WithLabelValues(kind).Set(float64(n))
}

func (m *Metrics) DegradedLookup() {
	if m == nil {
		return
	}
	m.degradedLookupsTotal.Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
