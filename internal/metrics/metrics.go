package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "seasonsync"

// Metrics holds the reconciliation collectors on a private registry
type Metrics struct {
	Registry *prometheus.Registry

	Passes        *prometheus.CounterVec // result: completed | aborted | failed
	PassDuration  prometheus.Histogram
	Resolutions   *prometheus.CounterVec // outcome
	Submissions   *prometheus.CounterVec // result: success | failure
	StaleReleases prometheus.Counter
	SkippedSeries prometheus.Counter
	SkipSetSize   prometheus.Gauge
	SkipResets    prometheus.Counter
}

// New registers every collector on a fresh registry
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_total",
			Help:      "Reconciliation passes by result.",
		}, []string{"result"}),
		PassDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pass_duration_seconds",
			Help:      "Duration of reconciliation passes.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Season resolutions by outcome.",
		}, []string{"outcome"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Releases submitted to the download client by result.",
		}, []string{"result"}),
		StaleReleases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_releases_total",
			Help:      "Resolved releases discarded as older than the freshness window.",
		}),
		SkippedSeries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_series_total",
			Help:      "Series passed over because they are in the skip-set.",
		}),
		SkipSetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "skip_set_size",
			Help:      "Series currently in the skip-set.",
		}),
		SkipResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skip_set_resets_total",
			Help:      "Times the skip-set window elapsed and the set was cleared.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Passes,
		m.PassDuration,
		m.Resolutions,
		m.Submissions,
		m.StaleReleases,
		m.SkippedSeries,
		m.SkipSetSize,
		m.SkipResets,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
