// Package dispatch hands keyspace slices to agents and takes them back.
// The Matcher answers GET /tasks/next by scanning campaigns in priority
// order and materializing a slice sized to the agent's benchmark speed;
// the Sweeper reclaims running tasks whose lease lapsed.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/keyspace"
	"github.com/cipherswarm/cipherswarm/pkg/metrics"
	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/state"
)

// Matcher assigns work to agents. All dispatch writes happen under the
// attack row lock so concurrent claims against one attack serialize;
// distinct attacks dispatch in parallel.
type Matcher struct {
	client     *ent.Client
	engine     *state.Engine
	benchmarks *services.BenchmarkService
	cfg        *config.DispatchConfig
	logger     *slog.Logger
}

// NewMatcher creates the work matcher.
func NewMatcher(client *ent.Client, engine *state.Engine, benchmarks *services.BenchmarkService, cfg *config.DispatchConfig) *Matcher {
	return &Matcher{
		client:     client,
		engine:     engine,
		benchmarks: benchmarks,
		cfg:        cfg,
		logger:     slog.With("component", "matcher"),
	}
}

// NextTask finds or materializes the highest-priority task the agent is
// eligible for. It returns services.ErrNoWork when nothing matches and
// services.ErrBenchmarkRequired when the first eligible attack is held
// back only by a missing or stale benchmark.
//
// An agent that already holds a running task gets that same task back
// with its lease renewed, so a restarted agent re-syncs instead of
// stacking assignments.
func (m *Matcher) NextTask(httpCtx context.Context, agentID int) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a, err := m.client.Agent.Query().
		Where(agent.IDEQ(agentID)).
		WithProjects().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if a.State != agent.StateActive {
		return nil, services.ErrNoWork
	}

	held, err := m.heldTask(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if held != nil {
		return held, nil
	}

	projectIDs := make([]int, 0, len(a.Edges.Projects))
	for _, p := range a.Edges.Projects {
		projectIDs = append(projectIDs, p.ID)
	}
	if len(projectIDs) == 0 {
		return nil, services.ErrNoWork
	}

	campaigns, err := m.client.Campaign.Query().
		Where(
			campaign.StateEQ(campaign.StateActive),
			campaign.ProjectIDIn(projectIDs...),
		).
		Order(ent.Desc(campaign.FieldPriority), ent.Asc(campaign.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	for _, c := range campaigns {
		hl, err := m.client.HashList.Get(ctx, c.HashListID)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to load hash list: %w", err)
		}

		attacks, err := m.client.Attack.Query().
			Where(
				attack.CampaignID(c.ID),
				attack.StateIn(attack.StatePending, attack.StateRunning),
			).
			Order(ent.Asc(attack.FieldPosition)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list attacks: %w", err)
		}

		for _, atk := range attacks {
			ok, err := m.hasWork(ctx, atk)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}

			speed, fresh, err := m.benchmarks.FreshSpeed(ctx, agentID, hl.HashTypeID)
			if err != nil {
				return nil, err
			}
			if !fresh {
				// The agent would get this attack if it had a usable
				// benchmark for the hash type. Make it benchmark first
				// instead of skipping to lower-priority work.
				return nil, services.ErrBenchmarkRequired
			}

			t, err := m.dispatchTx(ctx, agentID, atk.ID, c.ID, speed)
			if err != nil {
				if ent.IsConstraintError(err) {
					// A concurrent request already bound this agent to a
					// running task. Re-sync on that task instead.
					if held, herr := m.heldTask(ctx, agentID); herr == nil && held != nil {
						return held, nil
					}
				}
				return nil, err
			}
			if t != nil {
				return t, nil
			}
			// The attack drained between the probe and the lock; keep
			// scanning.
		}
	}

	return nil, services.ErrNoWork
}

// heldTask returns the agent's running task with its lease renewed, or
// nil when the agent holds nothing.
func (m *Matcher) heldTask(ctx context.Context, agentID int) (*ent.Task, error) {
	t, err := m.client.Task.Query().
		Where(task.AgentID(agentID), task.StateEQ(task.StateRunning)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query held task: %w", err)
	}
	t, err = m.client.Task.UpdateOne(t).
		SetActivityTimestamp(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to renew lease on task %d: %w", t.ID, err)
	}
	return t, nil
}

// hasWork reports whether the attack could yield a slice: a requeued
// pending task exists or undispatched keyspace remains. The answer is
// advisory; dispatchTx re-checks under the attack lock. Attacks whose
// resources have no line count yet are not dispatchable.
func (m *Matcher) hasWork(ctx context.Context, atk *ent.Attack) (bool, error) {
	exists, err := m.client.Task.Query().
		Where(
			task.AttackID(atk.ID),
			task.StateEQ(task.StatePending),
			task.AgentIDIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to probe pending tasks: %w", err)
	}
	if exists {
		return true, nil
	}

	if atk.TotalKeyspace != nil {
		return atk.DispatchedKeyspace < *atk.TotalKeyspace, nil
	}

	params, err := paramsFor(ctx, m.client.Resource, atk)
	if err != nil {
		return false, err
	}
	total, err := keyspace.Compute(params)
	if err != nil {
		if errors.Is(err, keyspace.ErrUnknownLineCount) {
			return false, nil
		}
		// A malformed attack must not stall the whole scan.
		m.logger.Warn("attack keyspace not computable",
			"attack_id", atk.ID, "error", err)
		return false, nil
	}
	return atk.DispatchedKeyspace < total, nil
}

// dispatchTx claims or materializes one slice under the attack row lock.
// A nil task with nil error means the attack had nothing left once the
// lock was held.
func (m *Matcher) dispatchTx(ctx context.Context, agentID, attackID, campaignID int, speed float64) (*ent.Task, error) {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	atk, err := tx.Attack.Query().
		Where(attack.IDEQ(attackID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock attack %d: %w", attackID, err)
	}
	if atk.State != attack.StatePending && atk.State != attack.StateRunning {
		return nil, nil
	}

	now := time.Now()

	// Requeued slices go out before new keyspace is cut.
	claimed, err := m.claimRequeuedTx(ctx, tx, atk, agentID, now)
	if err != nil {
		return nil, err
	}
	if claimed == nil {
		claimed, err = m.materializeSliceTx(ctx, tx, atk, agentID, speed, now)
		if err != nil || claimed == nil {
			return nil, err
		}
	}

	// The first claim starts the attack; atk.State is authoritative
	// under the lock.
	var effects []state.Effect
	if atk.State == attack.StatePending {
		_, effects, err = m.engine.AttackEventTx(ctx, tx, attackID, state.AttackEventAccept)
		if err != nil {
			return nil, fmt.Errorf("failed to start attack %d: %w", attackID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit dispatch: %w", err)
	}

	if fx := m.engine.TaskStatusEffect(claimed, campaignID); fx != nil {
		effects = append(effects, fx)
	}
	m.engine.RunEffects(ctx, effects)
	metrics.TasksDispatched.Inc()

	m.logger.Info("task dispatched",
		"task_id", claimed.ID,
		"attack_id", attackID,
		"agent_id", agentID,
		"skip", claimed.KeyspaceOffset,
		"limit", claimed.KeyspaceLimit)
	return claimed, nil
}

// claimRequeuedTx claims the lowest-offset pending task of the attack,
// if one exists.
func (m *Matcher) claimRequeuedTx(ctx context.Context, tx *ent.Tx, atk *ent.Attack, agentID int, now time.Time) (*ent.Task, error) {
	pending, err := tx.Task.Query().
		Where(
			task.AttackID(atk.ID),
			task.StateEQ(task.StatePending),
			task.AgentIDIsNil(),
		).
		Order(ent.Asc(task.FieldKeyspaceOffset)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending tasks: %w", err)
	}

	ok, err := claimTx(ctx, tx, pending.ID, agentID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	claimed, err := tx.Task.Get(ctx, pending.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task %d: %w", pending.ID, err)
	}
	return claimed, nil
}

// materializeSliceTx cuts the next undispatched slice into a task and
// claims it. Computing the plan here means total_keyspace is persisted
// on first dispatch, not at attack creation.
func (m *Matcher) materializeSliceTx(ctx context.Context, tx *ent.Tx, atk *ent.Attack, agentID int, speed float64, now time.Time) (*ent.Task, error) {
	params, err := paramsFor(ctx, tx.Resource, atk)
	if err != nil {
		return nil, err
	}
	phases, err := keyspace.PhasesFor(params)
	if err != nil {
		if errors.Is(err, keyspace.ErrUnknownLineCount) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to plan attack %d: %w", atk.ID, err)
	}

	if atk.TotalKeyspace == nil {
		var total int64
		for _, ph := range phases {
			total += ph.Keyspace
		}
		atk, err = tx.Attack.UpdateOne(atk).SetTotalKeyspace(total).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to store keyspace plan: %w", err)
		}
	}

	size := keyspace.SliceSize(speed, m.cfg.SliceTarget, m.cfg.SliceMinDuration, m.cfg.SliceMaxDuration)
	slice, ok := keyspace.NextSlice(phases, atk.DispatchedKeyspace, size)
	if !ok {
		return nil, nil
	}

	created, err := tx.Task.Create().
		SetAttackID(atk.ID).
		SetState(task.StatePending).
		SetKeyspaceOffset(slice.Skip).
		SetKeyspaceLimit(slice.Limit).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	ok, err = claimTx(ctx, tx, created.ID, agentID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	err = tx.Attack.UpdateOne(atk).
		AddDispatchedKeyspace(slice.Limit).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to advance dispatch mark: %w", err)
	}

	claimed, err := tx.Task.Get(ctx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task %d: %w", created.ID, err)
	}
	return claimed, nil
}

// paramsFor assembles the planner input for an attack, loading line
// counts for whichever resources it references.
func paramsFor(ctx context.Context, rc *ent.ResourceClient, atk *ent.Attack) (keyspace.Params, error) {
	p := keyspace.Params{
		Mode:          string(atk.AttackMode),
		Mask:          atk.Mask,
		IncrementMode: atk.IncrementMode,
		IncrementMin:  atk.IncrementMinimum,
		IncrementMax:  atk.IncrementMaximum,
		CustomCharsets: keyspace.Charsets{
			atk.CustomCharset1,
			atk.CustomCharset2,
			atk.CustomCharset3,
			atk.CustomCharset4,
		},
	}

	lineCount := func(id *int) (*int64, error) {
		if id == nil {
			return nil, nil
		}
		r, err := rc.Get(ctx, *id)
		if err != nil {
			return nil, fmt.Errorf("failed to load resource %d: %w", *id, err)
		}
		return r.LineCount, nil
	}

	var err error
	if p.WordListCount, err = lineCount(atk.WordListID); err != nil {
		return keyspace.Params{}, err
	}
	if p.RuleListCount, err = lineCount(atk.RuleListID); err != nil {
		return keyspace.Params{}, err
	}
	if p.MaskListCount, err = lineCount(atk.MaskListID); err != nil {
		return keyspace.Params{}, err
	}
	return p, nil
}
