package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCampaignChannelPayloads_ContainCampaignID is a contract test between
// the Go backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `data.campaign_id`
// in the JSON payload. ANY payload that is broadcast on a campaign-specific
// channel (campaign:{id}) MUST include a non-zero `campaign_id` field —
// otherwise the frontend silently drops it.
//
// This test guards against:
//   - A new payload struct that forgets the campaign_id field
//   - A call site that forgets to populate CampaignID
func TestCampaignChannelPayloads_ContainCampaignID(t *testing.T) {
	const testCampaignID = 77

	// Every payload type that flows through CampaignChannel(campaignID).
	// If you add a new payload that goes through a campaign channel,
	// add it here — the test will fail if campaign_id is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "CampaignStatusPayload",
			payload: CampaignStatusPayload{
				Type:       EventTypeCampaignStatus,
				CampaignID: testCampaignID,
				State:      "active",
				Timestamp:  "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "AttackStatusPayload",
			payload: AttackStatusPayload{
				Type:       EventTypeAttackStatus,
				CampaignID: testCampaignID,
				AttackID:   3,
				State:      "running",
				Timestamp:  "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "TaskStatusPayload",
			payload: TaskStatusPayload{
				Type:       EventTypeTaskStatus,
				CampaignID: testCampaignID,
				AttackID:   3,
				TaskID:     19,
				AgentID:    4,
				State:      "running",
				Timestamp:  "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "TaskProgressPayload",
			payload: TaskProgressPayload{
				Type:            EventTypeTaskProgress,
				CampaignID:      testCampaignID,
				AttackID:        3,
				TaskID:          19,
				ProgressPercent: 42.5,
				Timestamp:       "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "CrackObservedPayload",
			payload: CrackObservedPayload{
				Type:       EventTypeCrackObserved,
				CampaignID: testCampaignID,
				HashListID: 8,
				TaskID:     19,
				AgentID:    4,
				Uncracked:  120,
				Timestamp:  "2026-01-01T00:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))

			campaignID, ok := m["campaign_id"]
			require.True(t, ok, "%s must serialize a campaign_id field", tt.name)
			assert.Equal(t, float64(testCampaignID), campaignID,
				"%s campaign_id must round-trip", tt.name)

			typ, ok := m["type"]
			require.True(t, ok, "%s must serialize a type field", tt.name)
			assert.NotEmpty(t, typ)
		})
	}
}

// TestAgentsChannelPayloads_ContainAgentID covers the same contract for the
// global agents channel, which the frontend routes by `data.agent_id`.
func TestAgentsChannelPayloads_ContainAgentID(t *testing.T) {
	const testAgentID = 9

	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "AgentStatusPayload",
			payload: AgentStatusPayload{
				Type:      EventTypeAgentStatus,
				AgentID:   testAgentID,
				HostName:  "rig-01",
				State:     "active",
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "BenchmarkSubmittedPayload",
			payload: BenchmarkSubmittedPayload{
				Type:      EventTypeBenchmarkSubmitted,
				AgentID:   testAgentID,
				HashTypes: []int{0, 1000},
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))

			agentID, ok := m["agent_id"]
			require.True(t, ok, "%s must serialize an agent_id field", tt.name)
			assert.Equal(t, float64(testAgentID), agentID)
		})
	}
}

// TestCrackObservedPayload_NeverCarriesPlaintext pins the rule that recovered
// plaintexts are never broadcast. WebSocket subscribers only learn THAT a
// crack happened; the material itself stays behind the authenticated API.
func TestCrackObservedPayload_NeverCarriesPlaintext(t *testing.T) {
	payload := CrackObservedPayload{
		Type:       EventTypeCrackObserved,
		CampaignID: 1,
		HashListID: 2,
		TaskID:     3,
		AgentID:    4,
		Uncracked:  5,
		Timestamp:  "2026-01-01T00:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "plain_text")
	assert.NotContains(t, m, "plaintext")
	assert.NotContains(t, m, "hash_value")
}
