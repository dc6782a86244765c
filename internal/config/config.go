// Package config loads service settings from environment variables and,
// optionally, a YAML scenario file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka sink configuration. The feed publishes combined development
	// results when enabled; the model itself never consumes anything.
	KafkaBrokers   []string
	KafkaSinkTopic string
	KafkaEnabled   bool

	// SweepInterval is how often the feed service re-runs the scenario sweep.
	SweepInterval time.Duration

	// ScenarioFile optionally overrides the default latitude sweep with a
	// YAML scenario list.
	ScenarioFile string

	// Default sweep: one scenario per latitude with these deltas and steps.
	SurfaceTempDelta  float64
	AltitudeTempDelta float64
	Latitudes         []float64
	TimeSteps         int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	sweepInterval, err := parseDurationEnv("SWEEP_INTERVAL", time.Hour)
	if err != nil {
		return nil, err
	}

	surfaceTemp, err := parseFloatEnv("SURFACE_TEMP_DELTA", 5.0)
	if err != nil {
		return nil, err
	}

	altitudeTemp, err := parseFloatEnv("ALTITUDE_TEMP_DELTA", -8.0)
	if err != nil {
		return nil, err
	}

	latitudes, err := parseFloatListEnv("LATITUDES", []float64{30, 45, 60})
	if err != nil {
		return nil, err
	}

	timeSteps, err := parseIntEnv("TIME_STEPS", 24)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaBrokers:   splitList(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic: envOrDefault("KAFKA_SINK_TOPIC", "cyclogenesis-developments"),
		KafkaEnabled:   os.Getenv("KAFKA_ENABLED") == "true",

		SweepInterval: sweepInterval,
		ScenarioFile:  os.Getenv("SCENARIO_FILE"),

		SurfaceTempDelta:  surfaceTemp,
		AltitudeTempDelta: altitudeTemp,
		Latitudes:         latitudes,
		TimeSteps:         timeSteps,
	}

	if cfg.TimeSteps < 0 {
		return nil, errors.New("TIME_STEPS must be non-negative")
	}
	if cfg.SweepInterval <= 0 {
		return nil, errors.New("SWEEP_INTERVAL must be positive")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SINK_TOPIC is empty")
	}
	if len(cfg.Latitudes) == 0 && cfg.ScenarioFile == "" {
		return nil, errors.New("LATITUDES is empty and no SCENARIO_FILE is set")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseFloatEnv(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseIntEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseFloatListEnv(key string, fallback []float64) ([]float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	parts := splitList(s)
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry %q: %w", key, part, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
