// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Events come in two flavors:
//
//   - Persistent: written to the events table and broadcast via NOTIFY in
//     one transaction. Clients that reconnect replay missed events from
//     the table using db_event_id, then follow live notifications.
//     State transitions (campaign.status, attack.status, task.status,
//     crack.observed, agent.status) are persistent.
//
//   - Transient: NOTIFY only, no table row. High-frequency progress pings
//     (task.progress) are transient; a dropped one is superseded by the
//     next within seconds, so clients lose nothing durable.
//
// Channels:
//
//	campaign:<id>  everything scoped to one campaign (attack/task/crack)
//	campaigns      global campaign lifecycle for list views
//	agents         agent lifecycle and benchmark submissions
package events

import "fmt"

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypeCampaignStatus     = "campaign.status"
	EventTypeAttackStatus       = "attack.status"
	EventTypeTaskStatus         = "task.status"
	EventTypeCrackObserved      = "crack.observed"
	EventTypeAgentStatus        = "agent.status"
	EventTypeBenchmarkSubmitted = "benchmark.submitted"
)

// Transient event types (NOTIFY only).
const (
	EventTypeTaskProgress = "task.progress"
)

// GlobalCampaignsChannel carries campaign lifecycle events for list views.
const GlobalCampaignsChannel = "campaigns"

// AgentsChannel carries agent lifecycle and benchmark events.
const AgentsChannel = "agents"

// CampaignChannel returns the NOTIFY channel for one campaign.
func CampaignChannel(campaignID int) string {
	return fmt.Sprintf("campaign:%d", campaignID)
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "campaign:42")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
