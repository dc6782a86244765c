// Package simulator orchestrates cyclogenesis scenario sweeps and the
// periodic result feed built on top of them.
package simulator

import (
	"log/slog"
	"time"

	"github.com/couchcryptid/baroclinic-sim/internal/config"
	"github.com/couchcryptid/baroclinic-sim/internal/domain"
	"github.com/couchcryptid/baroclinic-sim/internal/observability"
)

// ScenarioRun pairs a scenario with its full ordered result sequence.
type ScenarioRun struct {
	Scenario config.Scenario            `json:"scenario"`
	Results  []domain.DevelopmentResult `json:"results"`
}

// SweepReport is the outcome of running every configured scenario once.
type SweepReport struct {
	Runs       []ScenarioRun `json:"runs"`
	Skipped    int           `json:"skipped"`
	ComputedAt time.Time     `json:"computed_at"`
}

// Runner executes scenario sweeps.
type Runner struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewRunner creates a Runner with the given observability.
func NewRunner(logger *slog.Logger, metrics *observability.Metrics) *Runner {
	return &Runner{logger: logger, metrics: metrics}
}

// RunSweep simulates every scenario in order. A scenario whose construction
// fails validation is logged and skipped; it never aborts the rest of the
// sweep. The report is stamped with the sweep start time.
func (r *Runner) RunSweep(scenarios []config.Scenario) SweepReport {
	start := clock.Now()
	report := SweepReport{
		Runs:       make([]ScenarioRun, 0, len(scenarios)),
		ComputedAt: start,
	}

	for _, scenario := range scenarios {
		model, err := domain.NewBaroclinicCyclogenesis(
			scenario.SurfaceTempDelta,
			scenario.AltitudeTempDelta,
			scenario.Latitude,
		)
		if err != nil {
			r.logger.Warn("skipping scenario, construction failed",
				"scenario", scenario.Name,
				"latitude", scenario.Latitude,
				"error", err,
			)
			r.metrics.ScenarioFailures.Inc()
			report.Skipped++
			continue
		}

		results := model.SimulateInteraction(scenario.TimeSteps)
		report.Runs = append(report.Runs, ScenarioRun{Scenario: scenario, Results: results})

		r.metrics.ScenariosRun.Inc()
		r.metrics.StepsComputed.Add(float64(len(results)))
		r.logger.Debug("scenario simulated",
			"scenario", scenario.Name,
			"latitude", scenario.Latitude,
			"steps", len(results),
		)
	}

	r.metrics.SweepDuration.Observe(clock.Since(start).Seconds())
	r.logger.Info("sweep complete",
		"scenarios", len(report.Runs),
		"skipped", report.Skipped,
	)
	return report
}
