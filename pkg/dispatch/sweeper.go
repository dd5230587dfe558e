package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/metrics"
	"github.com/cipherswarm/cipherswarm/pkg/state"
)

// Sweeper returns expired leases to the pool. A running task whose
// activity_timestamp is older than the lease TTL is abandoned through
// the engine, which requeues the slice and drops the agent binding.
type Sweeper struct {
	client *ent.Client
	engine *state.Engine
	cfg    *config.DispatchConfig
	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewSweeper creates the lease reclamation sweeper.
func NewSweeper(client *ent.Client, engine *state.Engine, cfg *config.DispatchConfig) *Sweeper {
	return &Sweeper{
		client: client,
		engine: engine,
		cfg:    cfg,
		logger: slog.With("component", "sweeper"),
	}
}

// Start launches the sweep loop. A full pass runs immediately so leases
// that expired while the server was down are reclaimed before the first
// tick. Sweep intervals are jittered so replicas spread their scans.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Lease sweeper started",
		"lease_ttl", s.cfg.LeaseTTL.String(),
		"interval", s.cfg.SweepInterval.String())
}

// Stop halts the loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	<-s.done

	s.logger.Info("Lease sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	for {
		timer := time.NewTimer(s.interval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.SweepOnce(ctx)
	if err != nil {
		s.logger.Error("Lease sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("Reclaimed expired leases", "count", n)
	}
}

// SweepOnce abandons every running task whose lease lapsed and returns
// how many were reclaimed. Exposed so operators and tests can force a
// pass without waiting for the ticker.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.LeaseTTL)
	expired, err := s.client.Task.Query().
		Where(
			task.StateEQ(task.StateRunning),
			task.ActivityTimestampLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired leases: %w", err)
	}

	reclaimed := 0
	for _, t := range expired {
		agentID := 0
		if t.AgentID != nil {
			agentID = *t.AgentID
		}
		if _, err := s.engine.ApplyTaskEvent(ctx, t.ID, state.TaskEventAbandon); err != nil {
			// The task finished or was paused between the query and the
			// abandon; not ours to reclaim anymore.
			if errors.Is(err, state.ErrGuardRejected) || ent.IsNotFound(err) {
				continue
			}
			s.logger.Error("Failed to reclaim task",
				"task_id", t.ID, "agent_id", agentID, "error", err)
			continue
		}
		metrics.TasksReclaimed.Inc()
		s.logger.Warn("Lease expired, task returned to pool",
			"task_id", t.ID,
			"agent_id", agentID,
			"last_activity", t.ActivityTimestamp.UTC().Format(time.RFC3339))
		reclaimed++
	}
	return reclaimed, nil
}

func (s *Sweeper) interval() time.Duration {
	base := s.cfg.SweepInterval
	jitter := s.cfg.SweepJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
