package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:       EventTypeTaskStatus,
			CampaignID: 7,
			AttackID:   3,
			TaskID:     19,
			State:      "running",
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeTaskStatus)
		assert.Contains(t, result, `"task_id":19`)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		oversized, _ := json.Marshal(map[string]any{
			"type":        EventTypeCampaignStatus,
			"campaign_id": 7,
			"state":       "active",
			"note":        strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(oversized))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		oversized, _ := json.Marshal(map[string]any{
			"type":        EventTypeCrackObserved,
			"campaign_id": 42,
			"agent_id":    9,
			"note":        strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(oversized))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, EventTypeCrackObserved, m["type"])
		assert.Equal(t, float64(42), m["campaign_id"])
		assert.Equal(t, float64(9), m["agent_id"])
		assert.Equal(t, true, m["truncated"])
		assert.NotContains(t, m, "note")
	})

	t.Run("agent channel payload keeps agent_id only", func(t *testing.T) {
		oversized, _ := json.Marshal(map[string]any{
			"type":     EventTypeAgentStatus,
			"agent_id": 5,
			"note":     strings.Repeat("b", 8000),
		})

		result, err := truncateIfNeeded(string(oversized))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(5), m["agent_id"])
		assert.NotContains(t, m, "campaign_id")
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("adds db_event_id to normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(AttackStatusPayload{
			Type:       EventTypeAttackStatus,
			CampaignID: 7,
			AttackID:   3,
			State:      "running",
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		})

		result, err := injectDBEventIDAndTruncate(payload, 123)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(123), m["db_event_id"])
		assert.Equal(t, EventTypeAttackStatus, m["type"])
	})

	t.Run("db_event_id survives truncation", func(t *testing.T) {
		oversized, _ := json.Marshal(map[string]any{
			"type":        EventTypeCampaignStatus,
			"campaign_id": 7,
			"note":        strings.Repeat("z", 8000),
		})

		result, err := injectDBEventIDAndTruncate(oversized, 456)
		require.NoError(t, err)
		assert.Less(t, len(result), 8000)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(456), m["db_event_id"])
		assert.Equal(t, true, m["truncated"])
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("{not json"), 1)
		assert.Error(t, err)
	})
}
