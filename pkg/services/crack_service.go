package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/crackresult"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/state"
)

// CrackService ingests recovered plaintexts. A batch is one transaction:
// the hash list row lock serializes batches per list, so the batch that
// recovers the final hash observes uncracked_count = 0 and triggers the
// completion cascade.
type CrackService struct {
	client *ent.Client
	engine *state.Engine
	pub    Broadcaster
	logger *slog.Logger
}

// NewCrackService creates a new CrackService. pub may be nil.
func NewCrackService(client *ent.Client, engine *state.Engine, pub Broadcaster) *CrackService {
	return &CrackService{
		client: client,
		engine: engine,
		pub:    pub,
		logger: slog.With("component", "crack_service"),
	}
}

// CrackBatchResult summarizes one ingested batch.
type CrackBatchResult struct {
	Fresh     int // hashes newly cracked by this batch
	Duplicate int // already-cracked hashes observed again
	Discarded int // hashes not present in the task's hash list
	TaskState task.State
}

// SubmitCracks processes a batch of crack submissions from the agent
// holding taskID. Unknown hashes are discarded with a log line;
// duplicates are recorded idempotently without touching counters.
func (s *CrackService) SubmitCracks(httpCtx context.Context, agentID, taskID int, subs []models.CrackSubmission) (*CrackBatchResult, error) {
	if len(subs) == 0 {
		return nil, NewValidationError("cracks", "required")
	}
	for i, sub := range subs {
		if sub.Hash == "" {
			return nil, NewValidationError(fmt.Sprintf("cracks[%d].hash", i), "required")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Resolve the hash list through immutable foreign keys, then lock it
	// before the engine takes its attack/task locks. Lifecycle-only
	// transactions never lock hash lists, so the order cannot invert.
	probe, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		Select(task.FieldAttackID).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return nil, err
	}
	atk, err := tx.Attack.Get(ctx, probe.AttackID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attack: %w", err)
	}
	camp, err := tx.Campaign.Get(ctx, atk.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	hl, err := tx.HashList.Query().
		Where(hashlist.IDEQ(camp.HashListID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock hash list: %w", err)
	}

	res := &CrackBatchResult{}
	var effects []state.Effect
	for _, sub := range subs {
		// The wire contract carries no salt, so a submission settles every
		// item sharing the hash value; items differing only in salt cannot
		// be told apart from the agent's report.
		items, err := tx.HashItem.Query().
			Where(
				hashitem.HashListIDEQ(hl.ID),
				hashitem.HashValueEQ(sub.Hash),
			).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to look up hash: %w", err)
		}
		if len(items) == 0 {
			res.Discarded++
			s.logger.Warn("crack for unknown hash discarded",
				"task_id", taskID, "agent_id", agentID, "hash_list_id", hl.ID)
			continue
		}

		crackedAt := sub.Timestamp
		if crackedAt.IsZero() {
			crackedAt = time.Now()
		}
		fresh := false
		for _, item := range items {
			if item.Plaintext != nil {
				continue
			}
			err := tx.HashItem.UpdateOneID(item.ID).
				SetPlaintext(sub.PlainText).
				SetCrackedAt(crackedAt).
				Exec(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to record plaintext: %w", err)
			}
			res.Fresh++
			fresh = true
			effects = append(effects, s.crackObservedEffect(
				camp.ID, hl.ID, taskID, agentID, hl.UncrackedCount-int64(res.Fresh)))
		}
		if !fresh {
			res.Duplicate++
		}

		// The observation itself is recorded either way; resubmits of the
		// same (task, hash) pair collapse into the existing row.
		err = tx.CrackResult.Create().
			SetTaskID(taskID).
			SetHashValue(sub.Hash).
			SetPlaintext(sub.PlainText).
			OnConflictColumns(crackresult.FieldTaskID, crackresult.FieldHashValue).
			Ignore().
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to record crack result: %w", err)
		}
	}

	if res.Fresh > 0 {
		err := tx.HashList.UpdateOneID(hl.ID).
			AddUncrackedCount(int64(-res.Fresh)).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement uncracked count: %w", err)
		}
	}

	// accept_crack renews the lease and, when the list is fully cracked,
	// completes the task and cascades upward.
	t, engineFx, err := s.engine.TaskEventTx(ctx, tx, taskID, state.TaskEventAcceptCrack)
	if err != nil {
		return nil, err
	}
	if t.AgentID == nil || *t.AgentID != agentID {
		s.logger.Warn("crack batch from non-holder",
			"task_id", taskID, "agent_id", agentID)
		return nil, fmt.Errorf("%w: task %d", ErrLeaseNotHeld, taskID)
	}
	res.TaskState = t.State
	effects = append(effects, engineFx...)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit crack batch: %w", err)
	}

	s.engine.RunEffects(ctx, effects)
	s.logger.Info("crack batch ingested",
		"task_id", taskID, "agent_id", agentID,
		"fresh", res.Fresh, "duplicate", res.Duplicate, "discarded", res.Discarded)
	return res, nil
}

// ListCracks returns a task's recorded crack results, newest first.
func (s *CrackService) ListCracks(ctx context.Context, taskID int) ([]*ent.CrackResult, error) {
	cracks, err := s.client.CrackResult.Query().
		Where(crackresult.TaskIDEQ(taskID)).
		Order(ent.Desc(crackresult.FieldCrackedAt), ent.Desc(crackresult.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list crack results: %w", err)
	}
	return cracks, nil
}

func (s *CrackService) crackObservedEffect(campaignID, hashListID, taskID, agentID int, uncracked int64) state.Effect {
	if s.pub == nil {
		return func(context.Context) {}
	}
	payload := events.CrackObservedPayload{
		Type:       events.EventTypeCrackObserved,
		CampaignID: campaignID,
		HashListID: hashListID,
		TaskID:     taskID,
		AgentID:    agentID,
		Uncracked:  uncracked,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	return func(ctx context.Context) {
		if err := s.pub.PublishCrackObserved(ctx, payload); err != nil {
			s.logger.Warn("crack publish failed", "task_id", taskID, "error", err)
		}
	}
}
