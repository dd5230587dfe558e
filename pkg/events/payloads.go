package events

import (
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// CampaignStatusPayload is the payload for campaign.status events.
// Published when a campaign transitions between lifecycle states.
type CampaignStatusPayload struct {
	Type       string         `json:"type"`        // always EventTypeCampaignStatus
	CampaignID int            `json:"campaign_id"` // campaign that changed
	State      campaign.State `json:"state"`       // draft, active, completed, archived
	Timestamp  string         `json:"timestamp"`   // RFC3339Nano
}

// AttackStatusPayload is the payload for attack.status events.
type AttackStatusPayload struct {
	Type       string       `json:"type"`        // always EventTypeAttackStatus
	CampaignID int          `json:"campaign_id"` // owning campaign
	AttackID   int          `json:"attack_id"`   // attack that changed
	State      attack.State `json:"state"`       // pending, running, completed, exhausted, paused, failed
	Timestamp  string       `json:"timestamp"`   // RFC3339Nano
}

// TaskStatusPayload is the payload for task.status events.
// Published on every task state transition.
type TaskStatusPayload struct {
	Type       string     `json:"type"`               // always EventTypeTaskStatus
	CampaignID int        `json:"campaign_id"`        // owning campaign
	AttackID   int        `json:"attack_id"`          // owning attack
	TaskID     int        `json:"task_id"`            // task that changed
	AgentID    int        `json:"agent_id,omitempty"` // leasing agent, 0 when unleased
	State      task.State `json:"state"`              // pending, running, completed, exhausted, paused, failed
	Timestamp  string     `json:"timestamp"`          // RFC3339Nano
}

// TaskProgressPayload is the payload for task.progress transient events.
// High frequency; superseded by the next frame, never persisted.
type TaskProgressPayload struct {
	Type            string  `json:"type"`        // always EventTypeTaskProgress
	CampaignID      int     `json:"campaign_id"` // owning campaign
	AttackID        int     `json:"attack_id"`   // owning attack
	TaskID          int     `json:"task_id"`     // reporting task
	ProgressPercent float64 `json:"progress_percent"`
	EstimatedFinish string  `json:"estimated_finish,omitempty"` // RFC3339, empty when not estimable
	Timestamp       string  `json:"timestamp"`                  // RFC3339Nano
}

// CrackObservedPayload is the payload for crack.observed events.
// Plaintexts are deliberately not broadcast; clients fetch them through
// the authenticated API.
type CrackObservedPayload struct {
	Type       string `json:"type"`        // always EventTypeCrackObserved
	CampaignID int    `json:"campaign_id"` // campaign whose hash list was hit
	HashListID int    `json:"hash_list_id"`
	TaskID     int    `json:"task_id"`  // task that produced the crack
	AgentID    int    `json:"agent_id"` // agent that produced the crack
	Uncracked  int64  `json:"uncracked"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// AgentStatusPayload is the payload for agent.status events.
type AgentStatusPayload struct {
	Type      string      `json:"type"`      // always EventTypeAgentStatus
	AgentID   int         `json:"agent_id"`  // agent that changed
	HostName  string      `json:"host_name"` // for display without a second fetch
	State     agent.State `json:"state"`     // pending, active, stopped, error
	Timestamp string      `json:"timestamp"` // RFC3339Nano
}

// BenchmarkSubmittedPayload is the payload for benchmark.submitted events.
type BenchmarkSubmittedPayload struct {
	Type      string `json:"type"`       // always EventTypeBenchmarkSubmitted
	AgentID   int    `json:"agent_id"`   // submitting agent
	HashTypes []int  `json:"hash_types"` // hash types covered by the submission
	Timestamp string `json:"timestamp"`  // RFC3339Nano
}
