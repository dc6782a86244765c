package domain

// Fixed positions for the two anomalies of a scenario.
const (
	surfaceAltitude = 0.0    // m
	surfacePressure = 1013.0 // hPa
	aloftAltitude   = 5000.0 // m
	aloftPressure   = 500.0  // hPa
)

// BaroclinicCyclogenesis is one simulation scenario: a surface and an
// upper-level anomaly at the same latitude inside a baroclinic zone.
type BaroclinicCyclogenesis struct {
	surface        *ThermalAnomaly
	aloft          *ThermalAnomaly
	baroclinicZone bool
}

// NewBaroclinicCyclogenesis builds a scenario from the two temperature
// deltas and the latitude. Any validation failure from the positions or
// anomalies propagates unchanged; the first one wins.
func NewBaroclinicCyclogenesis(surfaceTemp, altitudeTemp, latitude float64) (*BaroclinicCyclogenesis, error) {
	constants := DefaultConstants()

	surfacePos, err := NewPosition(latitude, surfaceAltitude, surfacePressure)
	if err != nil {
		return nil, err
	}
	aloftPos, err := NewPosition(latitude, aloftAltitude, aloftPressure)
	if err != nil {
		return nil, err
	}

	surface, err := NewThermalAnomaly(surfaceTemp, surfacePos, constants)
	if err != nil {
		return nil, err
	}
	aloft, err := NewThermalAnomaly(altitudeTemp, aloftPos, constants)
	if err != nil {
		return nil, err
	}

	return &BaroclinicCyclogenesis{
		surface:        surface,
		aloft:          aloft,
		baroclinicZone: true,
	}, nil
}

// interactionFactor grows the coupling between the two anomalies as the
// baroclinic zone matures; 1.0 outside a baroclinic zone.
func (b *BaroclinicCyclogenesis) interactionFactor(hour int) float64 {
	if !b.baroclinicZone {
		return 1.0
	}
	return 1.5 * (1.0 + float64(hour)/24.0)
}

// SimulateInteraction develops both anomalies for hours 0..timeSteps-1 and
// combines each pair of results into one scaled interaction record. The
// returned sequence is complete, ordered by hour, and never nil; zero
// timeSteps yields an empty sequence.
func (b *BaroclinicCyclogenesis) SimulateInteraction(timeSteps int) []DevelopmentResult {
	results := make([]DevelopmentResult, 0, max(timeSteps, 0))

	for hour := 0; hour < timeSteps; hour++ {
		surface := b.surface.Develop(hour)
		aloft := b.aloft.Develop(hour)

		factor := b.interactionFactor(hour)
		results = append(results, DevelopmentResult{
			VerticalVelocity:  (surface.VerticalVelocity + aloft.VerticalVelocity) * factor,
			RelativeVorticity: (surface.RelativeVorticity + aloft.RelativeVorticity) * factor,
			Hour:              hour,
		})
	}

	return results
}
