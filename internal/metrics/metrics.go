package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rickgao/dex-orders/internal/poller"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "dex_orders"

// Metrics holds the collector's Prometheus series.
type Metrics struct {
	registry *prometheus.Registry

	// Per-source
	OrdersLast    *prometheus.GaugeVec
	OrdersTotal   *prometheus.CounterVec
	EmptyFetches  *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec

	// Per-cycle
	CyclesTotal   prometheus.Counter
	CycleDuration prometheus.Histogram
	LastCycle     prometheus.Gauge
}

// New creates a Metrics instance on its own registry. Go runtime and process
// collectors are registered alongside.
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		OrdersLast: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "orders",
			Help:      "Number of open orders returned by the last fetch",
		}, []string{"source"}),
		OrdersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "orders_total",
			Help:      "Total number of order records fetched",
		}, []string{"source"}),
		EmptyFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "empty_fetches_total",
			Help:      "Fetches that returned no records, including failed ones",
		}, []string{"source"}),
		FetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "fetch_duration_seconds",
			Help:      "Time from fetch start to sink write completion",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"source"}),

		CyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "cycles_total",
			Help:      "Total number of completed poll cycles",
		}),
		CycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "cycle_duration_seconds",
			Help:      "Time from cycle start until every task settled",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
		LastCycle: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "poller",
			Name:      "last_cycle_timestamp_seconds",
			Help:      "Unix time of the last completed cycle start",
		}),
	}
}

// Report implements poller.Reporter.
func (m *Metrics) Report(obs poller.Observation) {
	for name, s := range obs.Sources {
		m.OrdersLast.WithLabelValues(name).Set(float64(s.Count))
		m.OrdersTotal.WithLabelValues(name).Add(float64(s.Count))
		m.FetchDuration.WithLabelValues(name).Observe(s.Elapsed.Seconds())
		if s.Count == 0 {
			m.EmptyFetches.WithLabelValues(name).Inc()
		}
	}

	m.CyclesTotal.Inc()
	m.CycleDuration.Observe(obs.Elapsed.Seconds())
	m.LastCycle.Set(float64(obs.Start.Unix()))
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler that serves this instance's metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
