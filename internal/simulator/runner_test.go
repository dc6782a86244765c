package simulator_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/baroclinic-sim/internal/config"
	"github.com/couchcryptid/baroclinic-sim/internal/observability"
	"github.com/couchcryptid/baroclinic-sim/internal/simulator"
)

func defaultScenario(name string, latitude float64) config.Scenario {
	return config.Scenario{
		Name:              name,
		SurfaceTempDelta:  5.0,
		AltitudeTempDelta: -8.0,
		Latitude:          latitude,
		TimeSteps:         24,
	}
}

func TestRunSweep_AllScenarios(t *testing.T) {
	frozen := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	simulator.SetClock(frozen)
	defer simulator.SetClock(nil)

	runner := simulator.NewRunner(slog.Default(), observability.NewMetricsForTesting())
	scenarios := []config.Scenario{
		defaultScenario("lat-30", 30),
		defaultScenario("lat-45", 45),
		defaultScenario("lat-60", 60),
	}

	report := runner.RunSweep(scenarios)

	require.Len(t, report.Runs, 3)
	assert.Zero(t, report.Skipped)
	assert.Equal(t, frozen.Now(), report.ComputedAt)
	for i, run := range report.Runs {
		assert.Equal(t, scenarios[i].Name, run.Scenario.Name)
		assert.Len(t, run.Results, 24)
	}
}

func TestRunSweep_SkipsInvalidScenario(t *testing.T) {
	runner := simulator.NewRunner(slog.Default(), observability.NewMetricsForTesting())
	scenarios := []config.Scenario{
		defaultScenario("good-south", 30),
		defaultScenario("bad-latitude", 120),
		defaultScenario("good-north", 60),
	}

	report := runner.RunSweep(scenarios)

	// One scenario fails validation; the rest of the sweep is unaffected.
	require.Len(t, report.Runs, 2)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "good-south", report.Runs[0].Scenario.Name)
	assert.Equal(t, "good-north", report.Runs[1].Scenario.Name)
}

func TestRunSweep_Deterministic(t *testing.T) {
	runner := simulator.NewRunner(slog.Default(), observability.NewMetricsForTesting())
	scenarios := []config.Scenario{defaultScenario("lat-45", 45)}

	first := runner.RunSweep(scenarios)
	second := runner.RunSweep(scenarios)

	require.Len(t, first.Runs, 1)
	assert.Equal(t, first.Runs[0].Results, second.Runs[0].Results)
}

func TestRunSweep_Empty(t *testing.T) {
	runner := simulator.NewRunner(slog.Default(), observability.NewMetricsForTesting())

	report := runner.RunSweep(nil)

	assert.Empty(t, report.Runs)
	assert.Zero(t, report.Skipped)
}
