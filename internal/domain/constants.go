package domain

// PhysicalConstants bundles the three scalars shared by every anomaly in a
// scenario. Anomalies hold their own copy, so the bundle is effectively
// immutable once a scenario is constructed.
type PhysicalConstants struct {
	EarthOmega float64 // Earth rotation rate (rad/s)
	Gravity    float64 // gravitational acceleration (m/s²)
	BaseTemp   float64 // reference temperature (K)
}

// DefaultConstants returns the standard-atmosphere reference values used by
// every scenario.
func DefaultConstants() PhysicalConstants {
	return PhysicalConstants{
		EarthOmega: 7.2921e-5,
		Gravity:    9.81,
		BaseTemp:   288.15,
	}
}
