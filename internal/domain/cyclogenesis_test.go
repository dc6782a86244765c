package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaroclinicCyclogenesis_Validation(t *testing.T) {
	t.Run("valid scenario", func(t *testing.T) {
		scenario, err := NewBaroclinicCyclogenesis(5.0, -8.0, 45.0)
		require.NoError(t, err)
		require.NotNil(t, scenario)
	})

	t.Run("invalid latitude propagates", func(t *testing.T) {
		scenario, err := NewBaroclinicCyclogenesis(5.0, -8.0, 91.0)
		var latErr *InvalidLatitudeError
		require.ErrorAs(t, err, &latErr)
		assert.Equal(t, 91.0, latErr.Value)
		assert.Nil(t, scenario)
	})

	t.Run("invalid surface temperature propagates", func(t *testing.T) {
		scenario, err := NewBaroclinicCyclogenesis(60.0, -8.0, 45.0)
		var tempErr *InvalidTemperatureError
		require.ErrorAs(t, err, &tempErr)
		assert.Equal(t, 60.0, tempErr.Value)
		assert.Nil(t, scenario)
	})

	t.Run("invalid altitude temperature propagates", func(t *testing.T) {
		scenario, err := NewBaroclinicCyclogenesis(5.0, -60.0, 45.0)
		var tempErr *InvalidTemperatureError
		require.ErrorAs(t, err, &tempErr)
		assert.Equal(t, -60.0, tempErr.Value)
		assert.Nil(t, scenario)
	})
}

func TestSimulateInteraction_HourSequence(t *testing.T) {
	scenario, err := NewBaroclinicCyclogenesis(5.0, -8.0, 45.0)
	require.NoError(t, err)

	results := scenario.SimulateInteraction(24)

	require.Len(t, results, 24)
	for i, r := range results {
		assert.Equal(t, i, r.Hour)
	}
}

func TestSimulateInteraction_ZeroSteps(t *testing.T) {
	scenario, err := NewBaroclinicCyclogenesis(5.0, -8.0, 45.0)
	require.NoError(t, err)

	results := scenario.SimulateInteraction(0)

	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSimulateInteraction_Deterministic(t *testing.T) {
	first, err := NewBaroclinicCyclogenesis(5.0, -8.0, 45.0)
	require.NoError(t, err)
	second, err := NewBaroclinicCyclogenesis(5.0, -8.0, 45.0)
	require.NoError(t, err)

	// Identical inputs must reproduce the sequence bit for bit.
	assert.Equal(t, first.SimulateInteraction(24), second.SimulateInteraction(24))
}

func TestSimulateInteraction_ScalesRawAnomalySums(t *testing.T) {
	scenario, err := NewBaroclinicCyclogenesis(5.0, -8.0, 45.0)
	require.NoError(t, err)

	results := scenario.SimulateInteraction(6)

	// Reconstruct the raw per-anomaly outputs from standalone anomalies at
	// the scenario's fixed positions and verify the interaction factor
	// multiplies their sums exactly.
	constants := DefaultConstants()
	surface, err := NewThermalAnomaly(5.0, mustPosition(t, 45, 0, 1013), constants)
	require.NoError(t, err)
	aloft, err := NewThermalAnomaly(-8.0, mustPosition(t, 45, 5000, 500), constants)
	require.NoError(t, err)

	for hour, combined := range results {
		s := surface.Develop(hour)
		a := aloft.Develop(hour)
		factor := 1.5 * (1.0 + float64(hour)/24.0)

		assert.Equal(t, (s.VerticalVelocity+a.VerticalVelocity)*factor, combined.VerticalVelocity, "hour %d", hour)
		assert.Equal(t, (s.RelativeVorticity+a.RelativeVorticity)*factor, combined.RelativeVorticity, "hour %d", hour)
	}
}

func TestSimulateInteraction_ReferenceScenario(t *testing.T) {
	scenario, err := NewBaroclinicCyclogenesis(5.0, -8.0, 45.0)
	require.NoError(t, err)

	results := scenario.SimulateInteraction(24)
	require.Len(t, results, 24)

	// Recompute hour 0 by hand. Warm surface anomaly: +5 K at 1013 hPa,
	// cold aloft anomaly: -8 K at 500 hPa, 45°N, intensity 1.
	constants := DefaultConstants()
	f := constants.EarthOmega * math.Sin(45*math.Pi/180)

	surfaceWind := 5.0 / constants.BaseTemp * constants.Gravity * 1000.0 * f
	surfaceVelocity := surfaceWind * 0.1 * math.Sqrt(1000.0/1013.0)
	surfaceVorticity := surfaceWind / 5.0e5 * 1000.0

	aloftWind := -(-8.0 / constants.BaseTemp * constants.Gravity * 1000.0) * f
	aloftVelocity := -aloftWind * 0.1 * math.Sqrt(2.0) * math.Exp(-5000.0/8000.0)
	aloftVorticity := -aloftWind / 5.0e5 * 1000.0

	wantVelocity := (surfaceVelocity + aloftVelocity) * 1.5
	wantVorticity := (surfaceVorticity + aloftVorticity) * 1.5

	assert.InEpsilon(t, wantVelocity, results[0].VerticalVelocity, 1e-9)
	assert.InEpsilon(t, wantVorticity, results[0].RelativeVorticity, 1e-9)

	// Cold air aloft over warm surface air: the combined signal at hour 0
	// is dominated by the upper-level anomaly and comes out negative.
	assert.Negative(t, results[0].VerticalVelocity)
	assert.Negative(t, results[0].RelativeVorticity)
}

func TestSimulateInteraction_PoleIsFinite(t *testing.T) {
	scenario, err := NewBaroclinicCyclogenesis(5.0, -8.0, 90.0)
	require.NoError(t, err)

	results := scenario.SimulateInteraction(24)
	require.Len(t, results, 24)

	for _, r := range results {
		assert.False(t, math.IsNaN(r.VerticalVelocity) || math.IsInf(r.VerticalVelocity, 0), "hour %d velocity", r.Hour)
		assert.False(t, math.IsNaN(r.RelativeVorticity) || math.IsInf(r.RelativeVorticity, 0), "hour %d vorticity", r.Hour)
	}
}

func TestSimulateInteraction_GrowsOverTime(t *testing.T) {
	scenario, err := NewBaroclinicCyclogenesis(5.0, -8.0, 45.0)
	require.NoError(t, err)

	results := scenario.SimulateInteraction(24)

	// Intensity and interaction factor both grow monotonically, so the
	// combined magnitudes must too.
	for i := 1; i < len(results); i++ {
		assert.Greater(t, math.Abs(results[i].VerticalVelocity), math.Abs(results[i-1].VerticalVelocity))
		assert.Greater(t, math.Abs(results[i].RelativeVorticity), math.Abs(results[i-1].RelativeVorticity))
	}
}
