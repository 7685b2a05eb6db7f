package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "access_hourly_etl"

// Metrics holds the Prometheus counters and gauges for one summary run.
type Metrics struct {
	RowsRead           prometheus.Counter
	TimestampsUnparsed prometheus.Counter
	IdentitiesWritten  prometheus.Counter
	RunDuration        prometheus.Gauge
	LastSuccess        prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates all run metrics on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_read_total",
			Help:      "Data rows read from the input export.",
		}),
		TimestampsUnparsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timestamps_unparsed_total",
			Help:      "Rows whose DATA value could not be parsed and were left out of the hour buckets.",
		}),
		IdentitiesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identities_written_total",
			Help:      "Distinct (station, user, name) rows written to the summary workbook.",
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of the last locate-load-aggregate-write run.",
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last run that wrote a workbook.",
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RowsRead,
		m.TimestampsUnparsed,
		m.IdentitiesWritten,
		m.RunDuration,
		m.LastSuccess,
	)

	return m
}

// NewMetricsForTesting returns fresh, isolated Metrics. Every call gets its own
// registry, so tests can create as many as they like.
func NewMetricsForTesting() *Metrics {
	return NewMetrics()
}

// Gatherer exposes the registry, e.g. for prometheus/testutil.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile dumps the metrics in text exposition format for the node
// exporter textfile collector. An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
