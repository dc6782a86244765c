package domain

// DevelopmentResult is the immutable per-step output of an anomaly or of a
// combined scenario step. Values are in internal units (m/s, s⁻¹); display
// conversion is a presentation concern.
type DevelopmentResult struct {
	VerticalVelocity  float64 `json:"vertical_velocity"`
	RelativeVorticity float64 `json:"relative_vorticity"`
	Hour              int     `json:"hour"`
}
