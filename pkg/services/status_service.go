package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/state"
)

// DefaultStatusRetention is the bounded per-task status history.
const DefaultStatusRetention = 10

// StatusService ingests relayed hashcat status frames. Each frame renews
// the task lease, updates derived progress, and keeps only the newest
// frames per task.
type StatusService struct {
	client    *ent.Client
	engine    *state.Engine
	pub       Broadcaster
	retention int
	logger    *slog.Logger
}

// NewStatusService creates a new StatusService. retention <= 0 means the
// default history bound. pub may be nil.
func NewStatusService(client *ent.Client, engine *state.Engine, pub Broadcaster, retention int) *StatusService {
	if retention <= 0 {
		retention = DefaultStatusRetention
	}
	return &StatusService{
		client:    client,
		engine:    engine,
		pub:       pub,
		retention: retention,
		logger:    slog.With("component", "status_service"),
	}
}

// Ingest processes one status frame from the agent holding taskID.
// ErrLeaseNotHeld is returned when the task is leased to someone else;
// paused and terminal tasks reject with ErrGuardRejected so the agent
// re-syncs via heartbeat.
func (s *StatusService) Ingest(httpCtx context.Context, agentID, taskID int, frame models.HashcatStatusFrame) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// The engine takes its locks first (attack, then task) and applies
	// the accept_status guard; pending tasks are promoted to running.
	t, effects, err := s.engine.TaskEventTx(ctx, tx, taskID, state.TaskEventAcceptStatus)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return err
	}
	if t.AgentID == nil || *t.AgentID != agentID {
		s.logger.Warn("status frame from non-holder",
			"task_id", taskID, "agent_id", agentID)
		return fmt.Errorf("%w: task %d", ErrLeaseNotHeld, taskID)
	}

	if err := s.insertFrameTx(ctx, tx, taskID, frame); err != nil {
		return err
	}
	if err := s.trimHistoryTx(ctx, tx, taskID); err != nil {
		return err
	}

	atk, err := tx.Attack.Get(ctx, t.AttackID)
	if err != nil {
		return fmt.Errorf("failed to load attack: %w", err)
	}

	pct := progressPercent(frame.ProgressDone(), frame.ProgressTotal())
	upd := tx.Task.UpdateOneID(taskID).
		SetProgressPercentage(pct).
		SetActivityTimestamp(time.Now())
	// Mask-list keyspaces are line-count estimates, so hashcat's stop
	// projection is meaningless for them.
	if atk.MaskListID != nil || frame.EstimatedStop.IsZero() {
		upd.ClearEstimatedFinish()
	} else {
		upd.SetEstimatedFinish(frame.EstimatedStop)
	}
	t, err = upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update task progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status frame: %w", err)
	}

	s.engine.RunEffects(ctx, effects)
	s.publishProgress(ctx, atk.CampaignID, atk.ID, t, pct)
	return nil
}

// TrimTerminalHistory re-trims status history on terminal tasks down to
// the retention bound. Ingest already trims as frames arrive and the
// engine purges on successful completion, so this only catches tasks
// that failed or crashed mid-purge. Safe to run from multiple replicas.
func (s *StatusService) TrimTerminalHistory(ctx context.Context) (int, error) {
	taskIDs, err := s.client.Task.Query().
		Where(
			task.StateIn(task.StateCompleted, task.StateExhausted, task.StateFailed),
			task.HasStatuses(),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find terminal tasks with history: %w", err)
	}

	deleted := 0
	for _, id := range taskIDs {
		stale, err := s.client.HashcatStatus.Query().
			Where(hashcatstatus.TaskIDEQ(id)).
			Order(ent.Desc(hashcatstatus.FieldReceivedAt), ent.Desc(hashcatstatus.FieldID)).
			Offset(s.retention).
			IDs(ctx)
		if err != nil {
			return deleted, fmt.Errorf("failed to find stale frames for task %d: %w", id, err)
		}
		if len(stale) == 0 {
			continue
		}
		n, err := s.client.HashcatStatus.Delete().
			Where(hashcatstatus.IDIn(stale...)).
			Exec(ctx)
		if err != nil {
			return deleted, fmt.Errorf("failed to trim history for task %d: %w", id, err)
		}
		deleted += n
	}
	return deleted, nil
}

// History returns a task's retained frames, newest first.
func (s *StatusService) History(ctx context.Context, taskID int) ([]*ent.HashcatStatus, error) {
	frames, err := s.client.HashcatStatus.Query().
		Where(hashcatstatus.TaskIDEQ(taskID)).
		Order(ent.Desc(hashcatstatus.FieldReceivedAt), ent.Desc(hashcatstatus.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	return frames, nil
}

func (s *StatusService) insertFrameTx(ctx context.Context, tx *ent.Tx, taskID int, frame models.HashcatStatusFrame) error {
	create := tx.HashcatStatus.Create().
		SetTaskID(taskID).
		SetOriginalLine(frame.OriginalLine).
		SetSession(frame.Session).
		SetStatusCode(frame.Status).
		SetTarget(frame.Target).
		SetProgressDone(frame.ProgressDone()).
		SetProgressTotal(frame.ProgressTotal()).
		SetRestorePoint(frame.RestorePoint).
		SetRejected(frame.Rejected).
		SetHashcatGuess(frame.HashcatGuess)
	if frame.RecoveredHashes != nil {
		create.SetRecoveredHashes(frame.RecoveredHashes)
	}
	if frame.RecoveredSalts != nil {
		create.SetRecoveredSalts(frame.RecoveredSalts)
	}
	if frame.Devices != nil {
		create.SetDevices(frame.Devices)
	}
	if !frame.TimeStart.IsZero() {
		create.SetTimeStart(frame.TimeStart)
	}
	if !frame.EstimatedStop.IsZero() {
		create.SetEstimatedStop(frame.EstimatedStop)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store status frame: %w", err)
	}
	return nil
}

func (s *StatusService) trimHistoryTx(ctx context.Context, tx *ent.Tx, taskID int) error {
	stale, err := tx.HashcatStatus.Query().
		Where(hashcatstatus.TaskIDEQ(taskID)).
		Order(ent.Desc(hashcatstatus.FieldReceivedAt), ent.Desc(hashcatstatus.FieldID)).
		Offset(s.retention).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to find stale frames: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}
	if _, err := tx.HashcatStatus.Delete().
		Where(hashcatstatus.IDIn(stale...)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to trim status history: %w", err)
	}
	return nil
}

func (s *StatusService) publishProgress(ctx context.Context, campaignID, attackID int, t *ent.Task, pct float64) {
	if s.pub == nil {
		return
	}
	payload := events.TaskProgressPayload{
		Type:            events.EventTypeTaskProgress,
		CampaignID:      campaignID,
		AttackID:        attackID,
		TaskID:          t.ID,
		ProgressPercent: pct,
		Timestamp:       time.Now().UTC().Format(time.RFC3339Nano),
	}
	if t.EstimatedFinish != nil {
		payload.EstimatedFinish = t.EstimatedFinish.UTC().Format(time.RFC3339)
	}
	if err := s.pub.PublishTaskProgress(ctx, payload); err != nil {
		s.logger.Warn("progress publish failed", "task_id", t.ID, "error", err)
	}
}

func progressPercent(done, total int64) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(done) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
