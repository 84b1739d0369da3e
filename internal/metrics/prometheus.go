package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "students_api"

// PrometheusCollector implements Recorder backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	seedRows        *prometheus.GaugeVec
	seedDropped     prometheus.Gauge
	seedRuns        *prometheus.CounterVec
}

var _ Recorder = (*PrometheusCollector)(nil)

// NewPrometheus creates a Prometheus-backed recorder.
//
// reg defaults to prometheus.DefaultRegisterer and namespace to "students_api".
// Collectors are registered lazily on first use.
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = defaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"})

		p.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds by method and route.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~2s
		}, []string{"method", "route"})

		p.seedRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "seed",
			Name:      "rows",
			Help:      "Rows written per table by the last successful seed run.",
		}, []string{"table"})

		p.seedDropped = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "seed",
			Name:      "dropped_students",
			Help:      "Students left without a group by the last successful seed run.",
		})

		p.seedRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "seed",
			Name:      "runs_total",
			Help:      "Total seed runs by result (success,failure).",
		}, []string{"result"})

		p.reg.MustRegister(p.requests)
		p.reg.MustRegister(p.requestDuration)
		p.reg.MustRegister(p.seedRows)
		p.reg.MustRegister(p.seedDropped)
		p.reg.MustRegister(p.seedRuns)
	})
}

// ObserveRequest increments the request counter and records latency.
func (p *PrometheusCollector) ObserveRequest(method, route string, status int, duration time.Duration) {
	p.ensureRegistered()
	if route == "" {
		route = "unmatched"
	}
	p.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordSeed stores per-table row counts and the dropped student count.
func (p *PrometheusCollector) RecordSeed(rows map[string]int, dropped int) {
	p.ensureRegistered()
	for table, count := range rows {
		p.seedRows.WithLabelValues(table).Set(float64(count))
	}
	p.seedDropped.Set(float64(dropped))
	p.seedRuns.WithLabelValues("success").Inc()
}

// RecordSeedFailure increments the failed seed run counter.
func (p *PrometheusCollector) RecordSeedFailure() {
	p.ensureRegistered()
	p.seedRuns.WithLabelValues("failure").Inc()
}

// Gatherer returns the registry the collector registers into, or
// prometheus.DefaultGatherer when that registry cannot be gathered.
func (p *PrometheusCollector) Gatherer() prometheus.Gatherer {
	if g, ok := p.reg.(prometheus.Gatherer); ok {
		return g
	}
	return prometheus.DefaultGatherer
}

// Handler serves the metrics gathered by g in the Prometheus exposition format.
// A nil gatherer serves prometheus.DefaultGatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
