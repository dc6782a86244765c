package domain

import (
	"errors"
	"fmt"
)

// ErrOutOfRange matches every construction-time validation error via
// errors.Is, for callers that only need to know a range check failed.
var ErrOutOfRange = errors.New("value out of range")

// InvalidLatitudeError reports a latitude outside [-90, 90] degrees.
type InvalidLatitudeError struct {
	Value float64
}

func (e *InvalidLatitudeError) Error() string {
	return fmt.Sprintf("invalid latitude: %g°", e.Value)
}

func (e *InvalidLatitudeError) Unwrap() error { return ErrOutOfRange }

// InvalidAltitudeError reports an altitude outside [-400, 20000] meters.
type InvalidAltitudeError struct {
	Value float64
}

func (e *InvalidAltitudeError) Error() string {
	return fmt.Sprintf("invalid altitude: %g m", e.Value)
}

func (e *InvalidAltitudeError) Unwrap() error { return ErrOutOfRange }

// InvalidPressureError reports a pressure outside [100, 1100] hPa.
type InvalidPressureError struct {
	Value float64
}

func (e *InvalidPressureError) Error() string {
	return fmt.Sprintf("invalid pressure: %g hPa", e.Value)
}

func (e *InvalidPressureError) Unwrap() error { return ErrOutOfRange }

// InvalidTemperatureError reports a temperature delta outside [-50, 50] K.
type InvalidTemperatureError struct {
	Value float64
}

func (e *InvalidTemperatureError) Error() string {
	return fmt.Sprintf("invalid temperature delta: %g K", e.Value)
}

func (e *InvalidTemperatureError) Unwrap() error { return ErrOutOfRange }
