// Command cyclosweep runs the configured scenario sweep once and prints a
// development table per scenario to stdout.
package main

import (
	"log/slog"
	"os"

	"github.com/couchcryptid/baroclinic-sim/internal/config"
	"github.com/couchcryptid/baroclinic-sim/internal/observability"
	"github.com/couchcryptid/baroclinic-sim/internal/render"
	"github.com/couchcryptid/baroclinic-sim/internal/simulator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	scenarios, err := cfg.Scenarios()
	if err != nil {
		logger.Error("failed to resolve scenarios", "error", err)
		os.Exit(1)
	}

	runner := simulator.NewRunner(logger, metrics)
	report := runner.RunSweep(scenarios)

	if err := render.WriteSweep(os.Stdout, report); err != nil {
		logger.Error("failed to write sweep output", "error", err)
		os.Exit(1)
	}

	if len(report.Runs) == 0 {
		logger.Error("no scenario produced results", "skipped", report.Skipped)
		os.Exit(1)
	}
}
