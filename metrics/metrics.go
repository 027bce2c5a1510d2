package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brackets"

// Metrics groups the collectors the service exports on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	computations *prometheus.CounterVec
	skipped      *prometheus.CounterVec
	duration     prometheus.Histogram
	requests     *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "standings_computations_total",
			Help:      "Number of standings computations by stage type.",
		}, []string{"stage_type"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "standings_skipped_matches_total",
			Help:      "Matches left out of standings, by reason.",
		}, []string{"reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "standings_duration_seconds",
			Help:      "Time spent loading and computing standings.",
			Buckets:   prometheus.DefBuckets,
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.computations,
		m.skipped,
		m.duration,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveComputation(stageType string, skipped map[string]int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(stageType).Inc()
	for reason, n := range skipped {
		m.skipped.WithLabelValues(reason).Add(float64(n))
	}
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRequest(method, route, status string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, status).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
