package simulator

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/baroclinic-sim/internal/config"
	"github.com/couchcryptid/baroclinic-sim/internal/observability"
)

// Publisher delivers the runs of a sweep to a sink.
type Publisher interface {
	PublishBatch(ctx context.Context, runs []ScenarioRun) error
}

// Feed periodically re-runs the scenario sweep and publishes the combined
// results. With a nil publisher it still sweeps, which keeps metrics and
// readiness useful when no sink is configured.
type Feed struct {
	runner    *Runner
	publisher Publisher
	scenarios []config.Scenario
	interval  time.Duration
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// NewFeed creates a Feed over the given scenarios. publisher may be nil.
func NewFeed(runner *Runner, publisher Publisher, scenarios []config.Scenario, interval time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Feed {
	return &Feed{
		runner:    runner,
		publisher: publisher,
		scenarios: scenarios,
		interval:  interval,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once at least one sweep has completed (and, if
// a publisher is configured, been published).
func (f *Feed) CheckReadiness(_ context.Context) error {
	if !f.ready.Load() {
		return errors.New("feed has not completed a sweep yet")
	}
	return nil
}

// Run sweeps immediately, then on every interval tick, until the context is
// cancelled. Publish failures retry with exponential backoff (200ms doubling
// to a 5s cap) without blocking the schedule past the next tick.
func (f *Feed) Run(ctx context.Context) error {
	f.logger.Info("feed started", "interval", f.interval, "scenarios", len(f.scenarios))
	f.metrics.FeedRunning.Set(1)
	defer f.metrics.FeedRunning.Set(0)

	ticker := clock.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		f.sweepAndPublish(ctx)

		select {
		case <-ctx.Done():
			f.logger.Info("feed stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
		}
	}
}

func (f *Feed) sweepAndPublish(ctx context.Context) {
	report := f.runner.RunSweep(f.scenarios)

	if f.publisher == nil {
		f.ready.Store(true)
		return
	}
	if len(report.Runs) == 0 {
		f.logger.Warn("sweep produced no runs, nothing to publish")
		return
	}

	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		err := f.publisher.PublishBatch(ctx, report.Runs)
		if err == nil {
			var total int
			for _, run := range report.Runs {
				total += len(run.Results)
			}
			f.metrics.ResultsPublished.Add(float64(total))
			f.ready.Store(true)
			f.logger.Debug("sweep published", "results", total)
			return
		}

		if ctx.Err() != nil {
			return
		}
		f.metrics.PublishErrors.Inc()
		f.logger.Error("publish failed", "error", err, "retry_in", backoff)

		if !sleepWithContext(ctx, backoff) {
			return
		}
		backoff = nextBackoff(backoff, maxBackoff)
	}
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	select {
	case <-ctx.Done():
		return false
	case <-clock.After(d):
		return true
	}
}
