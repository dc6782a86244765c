// Package kafka publishes combined development results to the sink topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/baroclinic-sim/internal/config"
	"github.com/couchcryptid/baroclinic-sim/internal/domain"
	"github.com/couchcryptid/baroclinic-sim/internal/simulator"
)

// Writer produces development-result messages to a Kafka topic.
// It implements simulator.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishBatch serializes every result of every run and publishes them to
// the sink topic in a single WriteMessages call.
func (w *Writer) PublishBatch(ctx context.Context, runs []simulator.ScenarioRun) error {
	var msgs []kafkago.Message
	for _, run := range runs {
		for _, result := range run.Results {
			msg, err := serializeToMessage(run.Scenario, result)
			if err != nil {
				return err
			}
			msgs = append(msgs, msg)
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// developmentMessage is the wire envelope for one combined result.
type developmentMessage struct {
	Scenario          string                   `json:"scenario"`
	Latitude          float64                  `json:"latitude"`
	SurfaceTempDelta  float64                  `json:"surface_temp_delta"`
	AltitudeTempDelta float64                  `json:"altitude_temp_delta"`
	Result            domain.DevelopmentResult `json:"result"`
}

// serializeToMessage marshals a combined result into a Kafka message. Keys
// are deterministic per scenario latitude and hour, so republishing a sweep
// overwrites rather than duplicates under compaction.
func serializeToMessage(scenario config.Scenario, result domain.DevelopmentResult) (kafkago.Message, error) {
	envelope := developmentMessage{
		Scenario:          scenario.Name,
		Latitude:          scenario.Latitude,
		SurfaceTempDelta:  scenario.SurfaceTempDelta,
		AltitudeTempDelta: scenario.AltitudeTempDelta,
		Result:            result,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize development result: %w", err)
	}

	return kafkago.Message{
		Key:   []byte(messageKey(scenario, result)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "scenario", Value: []byte(scenario.Name)},
			{Key: "hour", Value: []byte(strconv.Itoa(result.Hour))},
		},
	}, nil
}

func messageKey(scenario config.Scenario, result domain.DevelopmentResult) string {
	return fmt.Sprintf("lat:%g/hr:%d", scenario.Latitude, result.Hour)
}
