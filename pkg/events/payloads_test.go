package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatusPayload_AgentIDOmittedWhenUnleased(t *testing.T) {
	// Pending tasks have no agent; the field must vanish rather than
	// serialize as agent_id:0, which the frontend would read as a real ID.
	payload := TaskStatusPayload{
		Type:       EventTypeTaskStatus,
		CampaignID: 7,
		AttackID:   3,
		TaskID:     19,
		State:      "pending",
		Timestamp:  "2026-01-01T00:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "agent_id")

	payload.AgentID = 4
	data, err = json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, float64(4), m["agent_id"])
}

func TestTaskProgressPayload_EstimatedFinishOptional(t *testing.T) {
	payload := TaskProgressPayload{
		Type:            EventTypeTaskProgress,
		CampaignID:      7,
		AttackID:        3,
		TaskID:          19,
		ProgressPercent: 12.5,
		Timestamp:       "2026-01-01T00:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "estimated_finish", "unestimable progress omits the field")
	assert.Equal(t, 12.5, m["progress_percent"])

	payload.EstimatedFinish = "2026-01-01T02:30:00Z"
	data, err = json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "2026-01-01T02:30:00Z", m["estimated_finish"])
}
