package events_test

import (
	"testing"

	"taskboard-backend/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	taskID := uuid.New()
	employeeID := uuid.New()

	env := events.NewAssigned(events.AssignedPayload{
		TaskID:       taskID,
		EmployeeID:   employeeID,
		EmployeeName: "Alice Test",
		TaskTitle:    "Open registers",
		TaskDate:     "2026-08-24",
	})

	data, err := env.Encode()
	require.NoError(t, err)

	decoded, err := events.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, events.TypeTaskAssigned, decoded.Type)
	require.NotNil(t, decoded.Assigned)
	assert.Equal(t, taskID, decoded.Assigned.TaskID)
	assert.Equal(t, employeeID, decoded.Assigned.EmployeeID)
	assert.Equal(t, "Open registers", decoded.Assigned.TaskTitle)
	assert.Nil(t, decoded.Updated)
}

func TestBatchDetection(t *testing.T) {
	batch := events.NewUpdated(events.UpdatedPayload{})
	assert.True(t, batch.IsBatch())

	single := events.NewUpdated(events.UpdatedPayload{TaskID: uuid.New()})
	assert.False(t, single.IsBatch())

	assigned := events.NewAssigned(events.AssignedPayload{})
	assert.False(t, assigned.IsBatch())
}

func TestDecodeUnknownTypeSucceeds(t *testing.T) {
	decoded, err := events.Decode([]byte(`{"type":"task:archived","archived":{"task_id":"x"}}`))
	require.NoError(t, err)
	assert.Equal(t, events.Type("task:archived"), decoded.Type)
	assert.Nil(t, decoded.Assigned)
	assert.Nil(t, decoded.Updated)
}

func TestNopPublisherDiscards(t *testing.T) {
	var p events.NopPublisher
	p.Publish(uuid.New(), events.NewUpdated(events.UpdatedPayload{}))
}
