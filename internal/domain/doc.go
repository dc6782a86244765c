// Package domain implements a closed-form model of baroclinic cyclogenesis:
// a surface and an upper-level thermal anomaly at a fixed latitude, each
// evolving an induced vertical velocity and relative vorticity over discrete
// hourly steps, combined into one interaction signal.
//
// # Model Structure
//
// A [BaroclinicCyclogenesis] scenario owns exactly two [ThermalAnomaly]
// instances: one at the surface (0 m, 1013 hPa) and one aloft (5000 m,
// 500 hPa), both at the scenario's latitude. Each hour, every anomaly
// derives a thermal wind from its temperature perturbation, converts it to
// a vertical velocity and a relative vorticity, and the two results are
// summed and scaled by a time-growing interaction factor.
//
// There is no spatial grid and no PDE solver; every quantity is a direct
// function of the construction inputs and the hour index, so runs are
// deterministic and reproducible bit for bit.
//
// # Units
//
//	latitude            degrees, [-90, 90]
//	altitude            meters, [-400, 20000]
//	pressure            hPa, [100, 1100]
//	temperature delta   K, [-50, 50]
//	vertical velocity   m/s
//	relative vorticity  s⁻¹
//
// Display conversions (cm/s, 10⁻⁵ s⁻¹) are a presentation concern and live
// outside this package.
//
// # Sign Policy
//
// Two independent sign flips exist, both resolved through the lookup code
// in anomaly.go:
//
//   - Rotation sense: a positive temperature delta marks the anomaly
//     cyclonic; thermal wind and relative vorticity take the cyclonic sign,
//     negative deltas the opposite.
//   - Level: vertical velocity keeps its sign above 500 hPa pressure
//     (surface levels) and is negated at or below it (upper levels).
//     Pressure exactly at 500 hPa takes the upper-level branch, and the
//     vorticity doubling for upper levels applies strictly below 500 hPa.
//
// # Validation
//
// All range checks happen at construction ([NewPosition],
// [NewThermalAnomaly], [NewBaroclinicCyclogenesis]); the first violated
// constraint is reported and nothing is constructed. Once a scenario
// exists, stepping and interaction simulation cannot fail.
package domain
