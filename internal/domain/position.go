package domain

// Valid ranges for a Position. Altitude spans the Dead Sea shore to the
// lower stratosphere; pressure spans roughly the 100-1100 hPa column.
const (
	minLatitude = -90.0
	maxLatitude = 90.0
	minAltitude = -400.0
	maxAltitude = 20000.0
	minPressure = 100.0
	maxPressure = 1100.0
)

// Position locates an anomaly: latitude in degrees, altitude in meters,
// pressure in hPa. Constructed only through NewPosition, so an existing
// Position is always in range. Fields are unexported to keep it that way.
type Position struct {
	latitude float64
	altitude float64
	pressure float64
}

// NewPosition validates and builds a Position. Checks run in the order
// latitude, altitude, pressure; only the first violated range is reported.
func NewPosition(latitude, altitude, pressure float64) (Position, error) {
	if latitude < minLatitude || latitude > maxLatitude {
		return Position{}, &InvalidLatitudeError{Value: latitude}
	}
	if altitude < minAltitude || altitude > maxAltitude {
		return Position{}, &InvalidAltitudeError{Value: altitude}
	}
	if pressure < minPressure || pressure > maxPressure {
		return Position{}, &InvalidPressureError{Value: pressure}
	}

	return Position{latitude: latitude, altitude: altitude, pressure: pressure}, nil
}

// Latitude returns the latitude in degrees.
func (p Position) Latitude() float64 { return p.latitude }

// Altitude returns the altitude in meters.
func (p Position) Altitude() float64 { return p.altitude }

// Pressure returns the pressure in hPa.
func (p Position) Pressure() float64 { return p.pressure }
