package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (progress pings) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishCampaignStatus persists a campaign status event to the campaign
// channel and broadcasts a transient copy to the global campaigns channel.
// Both publishes are best-effort: if the persistent one fails, the transient
// one is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishCampaignStatus(ctx context.Context, payload CampaignStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal CampaignStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, EventTypeCampaignStatus, CampaignChannel(payload.CampaignID), payloadJSON); err != nil {
		slog.Warn("Failed to publish campaign status to campaign channel",
			"campaign_id", payload.CampaignID, "state", payload.State, "error", err)
		firstErr = err
	}

	if err := p.notifyOnly(ctx, GlobalCampaignsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish campaign status to global channel",
			"campaign_id", payload.CampaignID, "state", payload.State, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishAttackStatus persists and broadcasts an attack.status event.
func (p *EventPublisher) PublishAttackStatus(ctx context.Context, payload AttackStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AttackStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, EventTypeAttackStatus, CampaignChannel(payload.CampaignID), payloadJSON)
}

// PublishTaskStatus persists and broadcasts a task.status event.
// Fired on every task state transition.
func (p *EventPublisher) PublishTaskStatus(ctx context.Context, payload TaskStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, EventTypeTaskStatus, CampaignChannel(payload.CampaignID), payloadJSON)
}

// PublishTaskProgress broadcasts a task.progress transient event (no DB
// persistence). Used for per-frame progress updates — ephemeral, the next
// frame supersedes a lost one.
func (p *EventPublisher) PublishTaskProgress(ctx context.Context, payload TaskProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, CampaignChannel(payload.CampaignID), payloadJSON)
}

// PublishCrackObserved persists and broadcasts a crack.observed event.
func (p *EventPublisher) PublishCrackObserved(ctx context.Context, payload CrackObservedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal CrackObservedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, EventTypeCrackObserved, CampaignChannel(payload.CampaignID), payloadJSON)
}

// PublishAgentStatus persists and broadcasts an agent.status event.
func (p *EventPublisher) PublishAgentStatus(ctx context.Context, payload AgentStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AgentStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, EventTypeAgentStatus, AgentsChannel, payloadJSON)
}

// PublishBenchmarkSubmitted persists and broadcasts a benchmark.submitted event.
func (p *EventPublisher) PublishBenchmarkSubmitted(ctx context.Context, payload BenchmarkSubmittedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal BenchmarkSubmittedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, EventTypeBenchmarkSubmitted, AgentsChannel, payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, eventType, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (channel, event_type, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		channel, eventType, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type       string `json:"type"`
		CampaignID int    `json:"campaign_id"`
		AgentID    int    `json:"agent_id"`
		DBEventID  *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"truncated": true,
	}
	if routing.CampaignID != 0 {
		truncated["campaign_id"] = routing.CampaignID
	}
	if routing.AgentID != 0 {
		truncated["agent_id"] = routing.AgentID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
