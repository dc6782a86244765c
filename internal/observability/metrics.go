package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// simulation sweep and the result feed.
type Metrics struct {
	ScenariosRun     prometheus.Counter
	ScenarioFailures prometheus.Counter
	StepsComputed    prometheus.Counter
	ResultsPublished prometheus.Counter
	PublishErrors    prometheus.Counter
	FeedRunning      prometheus.Gauge
	SweepDuration    prometheus.Histogram
}

// NewMetrics creates and registers all simulation metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ScenariosRun: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cyclosim",
			Name:      "scenarios_run_total",
			Help:      "Total scenarios simulated successfully.",
		}),
		ScenarioFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cyclosim",
			Name:      "scenario_failures_total",
			Help:      "Total scenarios skipped due to construction-time validation errors.",
		}),
		StepsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cyclosim",
			Name:      "steps_computed_total",
			Help:      "Total hourly development steps computed across all scenarios.",
		}),
		ResultsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cyclosim",
			Name:      "results_published_total",
			Help:      "Total combined development results published to the sink.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cyclosim",
			Name:      "publish_errors_total",
			Help:      "Total failed publish attempts.",
		}),
		FeedRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cyclosim",
			Name:      "feed_running",
			Help:      "1 when the result feed is active, 0 when shut down.",
		}),
		SweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cyclosim",
			Name:      "sweep_duration_seconds",
			Help:      "Duration of a complete scenario sweep.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}

	prometheus.MustRegister(
		m.ScenariosRun,
		m.ScenarioFailures,
		m.StepsComputed,
		m.ResultsPublished,
		m.PublishErrors,
		m.FeedRunning,
		m.SweepDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ScenariosRun:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cyclosim", Name: "scenarios_run_total"}),
		ScenarioFailures: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cyclosim", Name: "scenario_failures_total"}),
		StepsComputed:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cyclosim", Name: "steps_computed_total"}),
		ResultsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cyclosim", Name: "results_published_total"}),
		PublishErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "cyclosim", Name: "publish_errors_total"}),
		FeedRunning:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "cyclosim", Name: "feed_running"}),
		SweepDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "cyclosim", Name: "sweep_duration_seconds"}),
	}
}
