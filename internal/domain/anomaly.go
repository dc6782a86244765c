package domain

import "math"

// Fixed model parameters. These are part of the model definition, not
// configuration.
const (
	vortexRadius        = 5.0e5  // characteristic vortex radius (m)
	vortexAmplification = 1.0e3  // vorticity amplification
	windShearScale      = 1000.0 // thermal wind scale
	velocityScale       = 0.1    // thermal wind → vertical velocity
	scaleHeight         = 8000.0 // atmospheric scale height (m)
	referencePressure   = 1000.0 // pressure-factor reference (hPa)
	upperLevelPressure  = 500.0  // surface/upper level boundary (hPa)
	intensityRampHours  = 12.0   // hours for intensity to double
)

// rotationSign centralizes the cyclonic/anticyclonic sign convention applied
// to thermal wind and relative vorticity.
var rotationSign = map[bool]float64{true: 1.0, false: -1.0}

// velocitySign keeps the vertical-velocity sign at surface levels and flips
// it at upper levels. Pressure exactly at the boundary counts as upper level.
func velocitySign(pressure float64) float64 {
	if pressure > upperLevelPressure {
		return 1.0
	}
	return -1.0
}

// intensityAt is the anomaly intensity after the given number of hours:
// 1.0 at hour zero, doubling every intensityRampHours. A pure function of
// the hour index, so Develop calls may arrive in any order.
func intensityAt(hour int) float64 {
	return 1.0 + float64(hour)/intensityRampHours
}

// ThermalAnomaly is one temperature perturbation at a fixed position. A
// positive delta marks it cyclonic, negative or zero anticyclonic, decided
// once at construction.
type ThermalAnomaly struct {
	tempDelta float64
	position  Position
	constants PhysicalConstants
	cyclonic  bool
	intensity float64
}

// NewThermalAnomaly validates the temperature delta and builds an anomaly
// with intensity 1.0.
func NewThermalAnomaly(tempDelta float64, position Position, constants PhysicalConstants) (*ThermalAnomaly, error) {
	if tempDelta < -50.0 || tempDelta > 50.0 {
		return nil, &InvalidTemperatureError{Value: tempDelta}
	}

	return &ThermalAnomaly{
		tempDelta: tempDelta,
		position:  position,
		constants: constants,
		cyclonic:  tempDelta > 0,
		intensity: 1.0,
	}, nil
}

// Cyclonic reports the rotation sense decided at construction.
func (a *ThermalAnomaly) Cyclonic() bool { return a.cyclonic }

// Intensity returns the intensity recorded by the most recent Develop call,
// or 1.0 before any call.
func (a *ThermalAnomaly) Intensity() float64 { return a.intensity }

// Position returns the anomaly's location.
func (a *ThermalAnomaly) Position() Position { return a.position }

// Coriolis returns the Coriolis parameter f = Ω·sin(φ) at the anomaly's
// latitude.
func (a *ThermalAnomaly) Coriolis() float64 {
	return a.constants.EarthOmega * math.Sin(a.position.latitude*math.Pi/180.0)
}

// thermalWind derives the signed thermal wind from the temperature delta
// and the local Coriolis parameter.
func (a *ThermalAnomaly) thermalWind() float64 {
	baseWind := a.tempDelta / a.constants.BaseTemp * a.constants.Gravity * windShearScale
	return rotationSign[a.cyclonic] * baseWind * a.Coriolis()
}

// relativeVorticity converts a thermal wind into the anomaly's relative
// vorticity at the given intensity. Upper-level anomalies (strictly below
// the 500 hPa boundary) spin up twice as fast.
func (a *ThermalAnomaly) relativeVorticity(thermalWind, intensity float64) float64 {
	base := thermalWind / vortexRadius
	altitudeFactor := 1.0
	if a.position.pressure < upperLevelPressure {
		altitudeFactor = 2.0
	}
	return rotationSign[a.cyclonic] * base * intensity * altitudeFactor * vortexAmplification
}

// Develop derives the anomaly's state at the given hour: vertical velocity
// and relative vorticity at the intensity reached by then. Total over the
// anomaly's state; it cannot fail.
func (a *ThermalAnomaly) Develop(hour int) DevelopmentResult {
	intensity := intensityAt(hour)
	a.intensity = intensity

	wind := a.thermalWind()

	pressureFactor := math.Sqrt(referencePressure / a.position.pressure)
	altitudeFactor := math.Exp(-a.position.altitude / scaleHeight)

	velocity := wind * velocityScale * pressureFactor * altitudeFactor
	velocity *= velocitySign(a.position.pressure)
	velocity *= intensity

	return DevelopmentResult{
		VerticalVelocity:  velocity,
		RelativeVorticity: a.relativeVorticity(wind, intensity),
		Hour:              hour,
	}
}
