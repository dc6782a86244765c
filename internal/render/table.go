// Package render formats scenario runs for console display. It owns the
// display-unit conversions; the model only ever speaks internal units.
package render

import (
	"fmt"
	"io"

	"github.com/couchcryptid/baroclinic-sim/internal/domain"
	"github.com/couchcryptid/baroclinic-sim/internal/simulator"
)

// Display-unit conversions.
const (
	cmPerMeter     = 100.0 // m/s → cm/s
	vorticityScale = 1e5   // s⁻¹ → 10⁻⁵ s⁻¹
)

// FormatRow renders one combined result as a fixed-width table row in
// display units.
func FormatRow(r domain.DevelopmentResult) string {
	return fmt.Sprintf("%4d | %20.2f | %20.2f",
		r.Hour,
		r.VerticalVelocity*cmPerMeter,
		r.RelativeVorticity*vorticityScale,
	)
}

// WriteRun writes one scenario's header and result table.
func WriteRun(w io.Writer, run simulator.ScenarioRun) error {
	s := run.Scenario
	if _, err := fmt.Fprintf(w, "\nScenario %s: %+g K surface / %+g K aloft at %g°N\n",
		s.Name, s.SurfaceTempDelta, s.AltitudeTempDelta, s.Latitude); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Hour | Vert. velocity (cm/s) | Rel. vorticity (10⁻⁵ s⁻¹)"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "-----|----------------------|----------------------"); err != nil {
		return err
	}
	for _, r := range run.Results {
		if _, err := fmt.Fprintln(w, FormatRow(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteSweep writes every run of a sweep report, preceded by a title line.
func WriteSweep(w io.Writer, report simulator.SweepReport) error {
	if _, err := fmt.Fprintln(w, "BAROCLINIC CYCLOGENESIS SIMULATION"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "=================================="); err != nil {
		return err
	}
	for _, run := range report.Runs {
		if err := WriteRun(w, run); err != nil {
			return err
		}
	}
	if report.Skipped > 0 {
		if _, err := fmt.Fprintf(w, "\n%d scenario(s) skipped due to invalid inputs\n", report.Skipped); err != nil {
			return err
		}
	}
	return nil
}
