package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/baroclinic-sim/internal/config"
	"github.com/couchcryptid/baroclinic-sim/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	scenario := config.Scenario{
		Name:              "lat-45",
		SurfaceTempDelta:  5.0,
		AltitudeTempDelta: -8.0,
		Latitude:          45.0,
		TimeSteps:         24,
	}
	result := domain.DevelopmentResult{
		VerticalVelocity:  -2.86e-4,
		RelativeVorticity: -1.58e-5,
		Hour:              7,
	}

	msg, err := serializeToMessage(scenario, result)
	require.NoError(t, err)

	assert.Equal(t, []byte("lat:45/hr:7"), msg.Key)

	var envelope developmentMessage
	require.NoError(t, json.Unmarshal(msg.Value, &envelope))
	assert.Equal(t, "lat-45", envelope.Scenario)
	assert.Equal(t, 45.0, envelope.Latitude)
	assert.Equal(t, 5.0, envelope.SurfaceTempDelta)
	assert.Equal(t, -8.0, envelope.AltitudeTempDelta)
	assert.Equal(t, result, envelope.Result)

	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "scenario", msg.Headers[0].Key)
	assert.Equal(t, []byte("lat-45"), msg.Headers[0].Value)
	assert.Equal(t, "hour", msg.Headers[1].Key)
	assert.Equal(t, []byte("7"), msg.Headers[1].Value)
}

func TestMessageKey_DeterministicAcrossSweeps(t *testing.T) {
	scenario := config.Scenario{Name: "lat-60", Latitude: 60}
	result := domain.DevelopmentResult{Hour: 23}

	assert.Equal(t, messageKey(scenario, result), messageKey(scenario, result))
	assert.Equal(t, "lat:60/hr:23", messageKey(scenario, result))
}
