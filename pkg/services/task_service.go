package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/state"
)

// TaskService handles the lifecycle reports agents send outside the
// status and crack ingestion paths: exhaustion, completion, voluntary
// abandonment and cancel confirmation. Every report is rejected unless
// the reporting agent holds the task's lease.
type TaskService struct {
	client *ent.Client
	engine *state.Engine
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client, engine *state.Engine) *TaskService {
	return &TaskService{
		client: client,
		engine: engine,
		logger: slog.With("component", "task_service"),
	}
}

// GetTask loads one task.
func (s *TaskService) GetTask(ctx context.Context, id int) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ReportExhausted records that the agent walked its slice without
// finding further candidates.
func (s *TaskService) ReportExhausted(httpCtx context.Context, agentID, taskID int) error {
	return s.applyHolderEvent(agentID, taskID, state.TaskEventExhaust)
}

// ReportCompleted records the agent's explicit completion signal.
func (s *TaskService) ReportCompleted(httpCtx context.Context, agentID, taskID int) error {
	return s.applyHolderEvent(agentID, taskID, state.TaskEventComplete)
}

// Abandon hands the slice back to the pool on the agent's own request.
func (s *TaskService) Abandon(httpCtx context.Context, agentID, taskID int) error {
	return s.applyHolderEvent(agentID, taskID, state.TaskEventAbandon)
}

// ConfirmCancel acknowledges a stop signal the agent received via
// heartbeat. Confirming a task that already failed is a no-op, so
// retried confirmations succeed.
func (s *TaskService) ConfirmCancel(httpCtx context.Context, agentID, taskID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return fmt.Errorf("failed to get task: %w", err)
	}
	if t.State == task.StateFailed {
		return nil
	}
	return s.applyHolderEvent(agentID, taskID, state.TaskEventCancel)
}

// HashListID resolves the hash list behind the agent's task so the zap
// endpoint can serve the cracked values. The lease check keeps agents
// from walking other projects' lists by guessing task ids.
func (s *TaskService) HashListID(ctx context.Context, agentID, taskID int) (int, error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return 0, err
	}
	if t.AgentID == nil || *t.AgentID != agentID {
		return 0, fmt.Errorf("%w: task %d", ErrLeaseNotHeld, taskID)
	}
	atk, err := s.client.Attack.Get(ctx, t.AttackID)
	if err != nil {
		return 0, fmt.Errorf("failed to load attack: %w", err)
	}
	camp, err := s.client.Campaign.Get(ctx, atk.CampaignID)
	if err != nil {
		return 0, fmt.Errorf("failed to load campaign: %w", err)
	}
	return camp.HashListID, nil
}

// applyHolderEvent applies ev on behalf of agentID. The holder is
// checked inside the transaction before the event fires because abandon
// clears the lease as part of the transition.
func (s *TaskService) applyHolderEvent(agentID, taskID int, ev state.TaskEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	holder, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		Select(task.FieldAgentID).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return fmt.Errorf("failed to load task: %w", err)
	}
	if holder.AgentID == nil || *holder.AgentID != agentID {
		s.logger.Warn("lifecycle report from non-holder",
			"task_id", taskID, "agent_id", agentID, "event", string(ev))
		return fmt.Errorf("%w: task %d", ErrLeaseNotHeld, taskID)
	}

	_, effects, err := s.engine.TaskEventTx(ctx, tx, taskID, ev)
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task %q: %w", ev, err)
	}

	s.engine.RunEffects(ctx, effects)
	s.logger.Info("task lifecycle report applied",
		"task_id", taskID, "agent_id", agentID, "event", string(ev))
	return nil
}
