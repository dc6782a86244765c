// Command cyclosimd is the long-running feed service: it re-runs the
// scenario sweep on an interval, optionally publishes the combined results
// to Kafka, and serves health, readiness, metrics, and on-demand simulation
// over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/baroclinic-sim/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/baroclinic-sim/internal/adapter/kafka"
	"github.com/couchcryptid/baroclinic-sim/internal/config"
	"github.com/couchcryptid/baroclinic-sim/internal/observability"
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

	// Sink is feature-flagged via KAFKA_ENABLED.
	var publisher simulator.Publisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("kafka sink enabled", "topic", cfg.KafkaSinkTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka sink disabled")
	}

	runner := simulator.NewRunner(logger, metrics)
	feed := simulator.NewFeed(runner, publisher, scenarios, cfg.SweepInterval, logger, metrics)

	defaults := httpadapter.Defaults{
		SurfaceTempDelta:  cfg.SurfaceTempDelta,
		AltitudeTempDelta: cfg.AltitudeTempDelta,
		TimeSteps:         cfg.TimeSteps,
	}
	srv := httpadapter.NewServer(cfg.HTTPAddr, feed, defaults, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start result feed.
	go func() {
		if err := feed.Run(ctx); err != nil {
			logger.Error("feed error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
