package state

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/events"
)

// Publisher receives lifecycle broadcasts after a transition commits.
// *events.EventPublisher satisfies it; tests may pass nil.
type Publisher interface {
	PublishTaskStatus(ctx context.Context, payload events.TaskStatusPayload) error
	PublishAttackStatus(ctx context.Context, payload events.AttackStatusPayload) error
	PublishCampaignStatus(ctx context.Context, payload events.CampaignStatusPayload) error
}

// Effect is a post-commit action, typically an event broadcast. Effects
// are best-effort: failures are logged inside the effect and swallowed.
type Effect func(ctx context.Context)

// Options tune executor behavior.
type Options struct {
	// StatusRetention is how many of the newest status frames survive
	// when a task ends successfully. Zero means the default of 10.
	StatusRetention int
	// ExhaustToCompleted reports exhausted tasks and attacks as
	// completed, matching the legacy wire behavior.
	ExhaustToCompleted bool
}

// Engine applies lifecycle events and their upward cascades. All writes
// for one event happen in a single transaction; the attack row lock
// serializes sibling evaluation so exactly one cascade wins.
type Engine struct {
	client *ent.Client
	pub    Publisher
	opts   Options
	logger *slog.Logger
}

// NewEngine creates the lifecycle executor. pub may be nil (no
// broadcasts, used in tests).
func NewEngine(client *ent.Client, pub Publisher, opts Options) *Engine {
	if opts.StatusRetention <= 0 {
		opts.StatusRetention = 10
	}
	return &Engine{
		client: client,
		pub:    pub,
		opts:   opts,
		logger: slog.With("component", "state_engine"),
	}
}

// RunEffects executes post-commit effects in order.
func (e *Engine) RunEffects(ctx context.Context, effects []Effect) {
	for _, fx := range effects {
		fx(ctx)
	}
}

// ApplyTaskEvent applies ev to the task in its own transaction and runs
// the resulting effects after commit.
func (e *Engine) ApplyTaskEvent(ctx context.Context, taskID int, ev TaskEvent) (*ent.Task, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, effects, err := e.TaskEventTx(ctx, tx, taskID, ev)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task %q: %w", ev, err)
	}
	e.RunEffects(ctx, effects)
	return t, nil
}

// ApplyAttackEvent applies ev to the attack in its own transaction and
// runs the resulting effects after commit.
func (e *Engine) ApplyAttackEvent(ctx context.Context, attackID int, ev AttackEvent) (*ent.Attack, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	a, effects, err := e.AttackEventTx(ctx, tx, attackID, ev)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit attack %q: %w", ev, err)
	}
	e.RunEffects(ctx, effects)
	return a, nil
}

// TaskEventTx applies ev to the task inside the caller's transaction and
// returns the effects to run after commit. Lock order is attack → task →
// campaign everywhere; attack_id is immutable, so the unlocked pre-read
// cannot go stale.
func (e *Engine) TaskEventTx(ctx context.Context, tx *ent.Tx, taskID int, ev TaskEvent) (*ent.Task, []Effect, error) {
	probe, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		Select(task.FieldAttackID).
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}

	atk, err := tx.Attack.Query().
		Where(attack.IDEQ(probe.AttackID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}

	t, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}

	camp, err := tx.Campaign.Get(ctx, atk.CampaignID)
	if err != nil {
		return nil, nil, err
	}
	hl, err := tx.HashList.Get(ctx, camp.HashListID)
	if err != nil {
		return nil, nil, err
	}

	prev := t.State
	next, err := NextTaskState(prev, ev)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case ev == TaskEventExhaust && e.opts.ExhaustToCompleted:
		next = task.StateCompleted
	case ev == TaskEventAcceptCrack && hl.UncrackedCount == 0:
		// Every hash recovered: the slice's job is done.
		next = task.StateCompleted
	}

	now := time.Now()
	upd := tx.Task.UpdateOneID(t.ID).SetState(next)
	switch ev {
	case TaskEventAccept, TaskEventRun, TaskEventAcceptStatus, TaskEventAcceptCrack:
		upd.SetActivityTimestamp(now)
	case TaskEventComplete, TaskEventExhaust:
		upd.SetActivityTimestamp(now).SetProgressPercentage(100)
	case TaskEventResume:
		upd.SetStale(true).SetAgentSignal(task.AgentSignalNone)
	case TaskEventAbandon:
		// Slice offsets survive; the next agent restarts the region.
		upd.ClearAgentID().
			SetAgentSignal(task.AgentSignalNone).
			SetProgressPercentage(0).
			ClearEstimatedFinish().
			SetActivityTimestamp(now)
	}
	if ev == TaskEventAcceptCrack && next == task.StateCompleted {
		upd.SetProgressPercentage(100)
	}

	t, err = upd.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update task %d on %q: %w", taskID, ev, err)
	}

	var effects []Effect
	if next != prev {
		effects = appendEffect(effects, e.taskStatusEffect(t, atk.CampaignID))
	}

	if next == task.StateCompleted || next == task.StateExhausted {
		if err := e.purgeStatusesTx(ctx, tx, t.ID); err != nil {
			return nil, nil, err
		}
	}

	if TaskTerminal(next) {
		fx, err := e.cascadeFromTaskTx(ctx, tx, atk, hl, ev)
		if err != nil {
			return nil, nil, err
		}
		effects = append(effects, fx...)
	}

	if err := e.touchCampaignTx(ctx, tx, atk.CampaignID, now); err != nil {
		return nil, nil, err
	}

	return t, effects, nil
}

// AttackEventTx applies ev to the attack inside the caller's transaction
// and returns the effects to run after commit.
func (e *Engine) AttackEventTx(ctx context.Context, tx *ent.Tx, attackID int, ev AttackEvent) (*ent.Attack, []Effect, error) {
	atk, err := tx.Attack.Query().
		Where(attack.IDEQ(attackID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}

	camp, err := tx.Campaign.Get(ctx, atk.CampaignID)
	if err != nil {
		return nil, nil, err
	}
	hl, err := tx.HashList.Get(ctx, camp.HashListID)
	if err != nil {
		return nil, nil, err
	}

	prev := atk.State
	if _, err := NextAttackState(prev, ev); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	var effects []Effect

	switch ev {
	case AttackEventComplete:
		atk, effects, err = e.completeAttackTx(ctx, tx, atk, hl)
	case AttackEventExhaust:
		atk, effects, err = e.exhaustAttackTx(ctx, tx, atk, hl)
	case AttackEventError:
		atk, effects, err = e.failAttackTx(ctx, tx, atk, hl)
	case AttackEventCancel:
		atk, effects, err = e.cancelAttackTx(ctx, tx, atk, hl)
	case AttackEventPause:
		// Live tasks park; running agents observe the pause signal on
		// their next heartbeat.
		_, err = tx.Task.Update().
			Where(task.AttackIDEQ(atk.ID), task.StateIn(task.StatePending, task.StateRunning)).
			SetState(task.StatePaused).
			SetAgentSignal(task.AgentSignalPause).
			Save(ctx)
		if err != nil {
			break
		}
		atk, err = tx.Attack.UpdateOneID(atk.ID).SetState(attack.StatePaused).Save(ctx)
		effects = appendEffect(effects, e.attackStatusEffect(atk))
	case AttackEventResume:
		_, err = tx.Task.Update().
			Where(task.AttackIDEQ(atk.ID), task.StateEQ(task.StatePaused)).
			SetState(task.StatePending).
			SetStale(true).
			SetAgentSignal(task.AgentSignalNone).
			ClearAgentID().
			Save(ctx)
		if err != nil {
			break
		}
		atk, err = tx.Attack.UpdateOneID(atk.ID).SetState(attack.StatePending).Save(ctx)
		effects = appendEffect(effects, e.attackStatusEffect(atk))
	case AttackEventRun, AttackEventAccept:
		upd := tx.Attack.UpdateOneID(atk.ID).SetState(attack.StateRunning)
		if atk.StartTime == nil {
			upd.SetStartTime(now)
		}
		changed := prev != attack.StateRunning
		atk, err = upd.Save(ctx)
		if err == nil && changed {
			effects = appendEffect(effects, e.attackStatusEffect(atk))
		}
	case AttackEventAbandon, AttackEventReset:
		// Tasks are destroyed and the keyspace re-planned against the
		// resources as they exist now.
		_, err = tx.Task.Delete().Where(task.AttackIDEQ(atk.ID)).Exec(ctx)
		if err != nil {
			break
		}
		atk, err = tx.Attack.UpdateOneID(atk.ID).
			SetState(attack.StatePending).
			SetDispatchedKeyspace(0).
			ClearTotalKeyspace().
			ClearStartTime().
			ClearEndTime().
			Save(ctx)
		effects = appendEffect(effects, e.attackStatusEffect(atk))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to apply attack %d event %q: %w", attackID, ev, err)
	}

	if err := e.touchCampaignTx(ctx, tx, atk.CampaignID, now); err != nil {
		return nil, nil, err
	}

	return atk, effects, nil
}

// completeAttackTx ends the attack successfully. When the hash list is
// fully cracked the completion fans out to every non-terminal sibling
// attack (best-effort), then the campaign derivation runs once.
func (e *Engine) completeAttackTx(ctx context.Context, tx *ent.Tx, atk *ent.Attack, hl *ent.HashList) (*ent.Attack, []Effect, error) {
	atk, effects, err := e.completeOneAttackTx(ctx, tx, atk)
	if err != nil {
		return nil, nil, err
	}

	if hl.UncrackedCount == 0 {
		siblings, err := tx.Attack.Query().
			Where(attack.CampaignIDEQ(atk.CampaignID),
				attack.IDNEQ(atk.ID),
				attack.StateNotIn(attack.StateCompleted, attack.StateExhausted, attack.StateFailed)).
			All(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list sibling attacks: %w", err)
		}
		for _, sib := range siblings {
			_, fx, err := e.completeOneAttackTx(ctx, tx, sib)
			if err != nil {
				// Best-effort fanout: the primary completion stands.
				e.logger.Warn("sibling attack completion failed",
					"attack_id", sib.ID, "campaign_id", sib.CampaignID, "error", err)
				continue
			}
			effects = append(effects, fx...)
		}
	}

	fx, err := e.deriveCampaignTx(ctx, tx, atk.CampaignID, hl)
	if err != nil {
		return nil, nil, err
	}
	effects = append(effects, fx...)

	return atk, effects, nil
}

// completeOneAttackTx finishes a single attack, completing its
// non-terminal tasks first so the attack never completes over a live
// task. Guard rejections are tolerated for cascade callers.
func (e *Engine) completeOneAttackTx(ctx context.Context, tx *ent.Tx, atk *ent.Attack) (*ent.Attack, []Effect, error) {
	if _, err := NextAttackState(atk.State, AttackEventComplete); err != nil {
		// Already terminal; cascades tolerate this.
		e.logger.Debug("attack completion skipped",
			"attack_id", atk.ID, "state", atk.State)
		return atk, nil, nil
	}

	attackID := atk.ID
	now := time.Now()
	_, err := tx.Task.Update().
		Where(task.AttackIDEQ(attackID),
			task.StateNotIn(task.StateCompleted, task.StateExhausted, task.StateFailed)).
		SetState(task.StateCompleted).
		SetProgressPercentage(100).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to complete tasks of attack %d: %w", attackID, err)
	}

	atk, err = tx.Attack.UpdateOneID(attackID).
		SetState(attack.StateCompleted).
		SetEndTime(now).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to complete attack %d: %w", attackID, err)
	}

	return atk, appendEffect(nil, e.attackStatusEffect(atk)), nil
}

// exhaustAttackTx ends the attack with its keyspace fully searched and
// hashes still uncracked.
func (e *Engine) exhaustAttackTx(ctx context.Context, tx *ent.Tx, atk *ent.Attack, hl *ent.HashList) (*ent.Attack, []Effect, error) {
	if _, err := NextAttackState(atk.State, AttackEventExhaust); err != nil {
		e.logger.Debug("attack exhaust skipped",
			"attack_id", atk.ID, "state", atk.State)
		return atk, nil, nil
	}

	attackID := atk.ID
	next := attack.StateExhausted
	if e.opts.ExhaustToCompleted {
		next = attack.StateCompleted
	}
	atk, err := tx.Attack.UpdateOneID(attackID).
		SetState(next).
		SetEndTime(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to exhaust attack %d: %w", attackID, err)
	}

	effects := appendEffect(nil, e.attackStatusEffect(atk))
	fx, err := e.deriveCampaignTx(ctx, tx, atk.CampaignID, hl)
	if err != nil {
		return nil, nil, err
	}
	return atk, append(effects, fx...), nil
}

// failAttackTx fails the attack after a fatal task error, cancelling
// its remaining live tasks.
func (e *Engine) failAttackTx(ctx context.Context, tx *ent.Tx, atk *ent.Attack, hl *ent.HashList) (*ent.Attack, []Effect, error) {
	if _, err := NextAttackState(atk.State, AttackEventError); err != nil {
		e.logger.Debug("attack failure skipped",
			"attack_id", atk.ID, "state", atk.State)
		return atk, nil, nil
	}
	return e.failLiveTasksTx(ctx, tx, atk, hl)
}

// cancelAttackTx fails the attack by operator action.
func (e *Engine) cancelAttackTx(ctx context.Context, tx *ent.Tx, atk *ent.Attack, hl *ent.HashList) (*ent.Attack, []Effect, error) {
	return e.failLiveTasksTx(ctx, tx, atk, hl)
}

func (e *Engine) failLiveTasksTx(ctx context.Context, tx *ent.Tx, atk *ent.Attack, hl *ent.HashList) (*ent.Attack, []Effect, error) {
	// Running agents see the stop signal on their next heartbeat; their
	// next status POST gets 409 either way.
	attackID := atk.ID
	_, err := tx.Task.Update().
		Where(task.AttackIDEQ(attackID),
			task.StateIn(task.StatePending, task.StateRunning, task.StatePaused)).
		SetState(task.StateFailed).
		SetAgentSignal(task.AgentSignalStop).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to cancel tasks of attack %d: %w", attackID, err)
	}

	atk, err = tx.Attack.UpdateOneID(attackID).
		SetState(attack.StateFailed).
		SetEndTime(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fail attack %d: %w", attackID, err)
	}

	effects := appendEffect(nil, e.attackStatusEffect(atk))
	fx, err := e.deriveCampaignTx(ctx, tx, atk.CampaignID, hl)
	if err != nil {
		return nil, nil, err
	}
	return atk, append(effects, fx...), nil
}

// cascadeFromTaskTx evaluates the attack-level consequence of a task
// entering a terminal state. The attack row is already locked.
func (e *Engine) cascadeFromTaskTx(ctx context.Context, tx *ent.Tx, atk *ent.Attack, hl *ent.HashList, ev TaskEvent) ([]Effect, error) {
	switch ev {
	case TaskEventError:
		// A fatal slice failure poisons the whole attack.
		_, fx, err := e.failAttackTx(ctx, tx, atk, hl)
		return fx, err
	case TaskEventCancel:
		// Cancellation of a single task is always downstream of an
		// attack-level action; nothing to cascade back up.
		return nil, nil
	}

	if hl.UncrackedCount == 0 {
		_, fx, err := e.completeAttackTx(ctx, tx, atk, hl)
		return fx, err
	}

	live, err := tx.Task.Query().
		Where(task.AttackIDEQ(atk.ID),
			task.StateIn(task.StatePending, task.StateRunning, task.StatePaused)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count live tasks: %w", err)
	}
	if live > 0 {
		return nil, nil
	}

	// A failed slice means part of the keyspace was never searched;
	// only an operator reset can resolve that.
	failed, err := tx.Task.Query().
		Where(task.AttackIDEQ(atk.ID), task.StateEQ(task.StateFailed)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check failed tasks: %w", err)
	}
	if failed {
		return nil, nil
	}

	// More slices to hand out: the matcher keeps dispatching.
	if atk.TotalKeyspace == nil || atk.DispatchedKeyspace < *atk.TotalKeyspace {
		return nil, nil
	}

	_, fx, err := e.exhaustAttackTx(ctx, tx, atk, hl)
	return fx, err
}

// deriveCampaignTx completes the campaign when every attack is terminal
// and either the hash list is fully cracked or every attack exhausted.
func (e *Engine) deriveCampaignTx(ctx context.Context, tx *ent.Tx, campaignID int, hl *ent.HashList) ([]Effect, error) {
	c, err := tx.Campaign.Query().
		Where(campaign.IDEQ(campaignID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	if c.State != campaign.StateActive {
		return nil, nil
	}

	attacks, err := tx.Attack.Query().
		Where(attack.CampaignIDEQ(campaignID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign attacks: %w", err)
	}
	if len(attacks) == 0 {
		return nil, nil
	}

	allExhausted := true
	for _, a := range attacks {
		if !AttackTerminal(a.State) {
			return nil, nil
		}
		if a.State != attack.StateExhausted {
			allExhausted = false
		}
	}
	if hl.UncrackedCount != 0 && !allExhausted {
		return nil, nil
	}

	c, err = tx.Campaign.UpdateOneID(campaignID).
		SetState(campaign.StateCompleted).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete campaign %d: %w", campaignID, err)
	}
	return appendEffect(nil, e.campaignStatusEffect(c)), nil
}

// purgeStatusesTx drops status frames beyond the retention limit,
// newest first, for a task that just ended successfully.
func (e *Engine) purgeStatusesTx(ctx context.Context, tx *ent.Tx, taskID int) error {
	stale, err := tx.HashcatStatus.Query().
		Where(hashcatstatus.TaskIDEQ(taskID)).
		Order(ent.Desc(hashcatstatus.FieldReceivedAt), ent.Desc(hashcatstatus.FieldID)).
		Offset(e.opts.StatusRetention).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stale statuses: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}
	if _, err := tx.HashcatStatus.Delete().
		Where(hashcatstatus.IDIn(stale...)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to purge statuses of task %d: %w", taskID, err)
	}
	return nil
}

func (e *Engine) touchCampaignTx(ctx context.Context, tx *ent.Tx, campaignID int, now time.Time) error {
	if err := tx.Campaign.UpdateOneID(campaignID).
		SetUpdatedAt(now).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to touch campaign %d: %w", campaignID, err)
	}
	return nil
}

func appendEffect(effects []Effect, fx Effect) []Effect {
	if fx == nil {
		return effects
	}
	return append(effects, fx)
}

// TaskStatusEffect builds the post-commit task.status publish for a
// task that changed state outside TaskEventTx, such as a dispatch
// claim. Run it through RunEffects after the transaction commits.
func (e *Engine) TaskStatusEffect(t *ent.Task, campaignID int) Effect {
	return e.taskStatusEffect(t, campaignID)
}

func (e *Engine) taskStatusEffect(t *ent.Task, campaignID int) Effect {
	if e.pub == nil {
		return nil
	}
	agentID := 0
	if t.AgentID != nil {
		agentID = *t.AgentID
	}
	payload := events.TaskStatusPayload{
		Type:       events.EventTypeTaskStatus,
		CampaignID: campaignID,
		AttackID:   t.AttackID,
		TaskID:     t.ID,
		AgentID:    agentID,
		State:      t.State,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	return func(ctx context.Context) {
		if err := e.pub.PublishTaskStatus(ctx, payload); err != nil {
			e.logger.Warn("task status publish failed",
				"task_id", payload.TaskID, "state", payload.State, "error", err)
		}
	}
}

func (e *Engine) attackStatusEffect(a *ent.Attack) Effect {
	if e.pub == nil {
		return nil
	}
	payload := events.AttackStatusPayload{
		Type:       events.EventTypeAttackStatus,
		CampaignID: a.CampaignID,
		AttackID:   a.ID,
		State:      a.State,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	return func(ctx context.Context) {
		if err := e.pub.PublishAttackStatus(ctx, payload); err != nil {
			e.logger.Warn("attack status publish failed",
				"attack_id", payload.AttackID, "state", payload.State, "error", err)
		}
	}
}

func (e *Engine) campaignStatusEffect(c *ent.Campaign) Effect {
	if e.pub == nil {
		return nil
	}
	payload := events.CampaignStatusPayload{
		Type:       events.EventTypeCampaignStatus,
		CampaignID: c.ID,
		State:      c.State,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	return func(ctx context.Context) {
		if err := e.pub.PublishCampaignStatus(ctx, payload); err != nil {
			e.logger.Warn("campaign status publish failed",
				"campaign_id", payload.CampaignID, "state", payload.State, "error", err)
		}
	}
}
