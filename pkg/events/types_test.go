package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignChannel(t *testing.T) {
	tests := []struct {
		name       string
		campaignID int
		want       string
	}{
		{
			name:       "formats campaign channel correctly",
			campaignID: 42,
			want:       "campaign:42",
		},
		{
			name:       "handles large IDs",
			campaignID: 2147483647,
			want:       "campaign:2147483647",
		},
		{
			name:       "handles zero",
			campaignID: 0,
			want:       "campaign:0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CampaignChannel(tt.campaignID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeCampaignStatus,
		EventTypeAttackStatus,
		EventTypeTaskStatus,
		EventTypeCrackObserved,
		EventTypeAgentStatus,
		EventTypeBenchmarkSubmitted,
		EventTypeTaskProgress,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestChannelConstants(t *testing.T) {
	// Global channels must not collide with the per-campaign namespace.
	assert.Equal(t, "campaigns", GlobalCampaignsChannel)
	assert.Equal(t, "agents", AgentsChannel)
	assert.NotEqual(t, GlobalCampaignsChannel, AgentsChannel)
}
