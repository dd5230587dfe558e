package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// gaugeStates is every task state the poller reports, so gauges for
// empty states read 0 instead of holding their last value.
var gaugeStates = []task.State{
	task.StatePending,
	task.StateRunning,
	task.StatePaused,
	task.StateCompleted,
	task.StateExhausted,
	task.StateFailed,
}

// Poller recomputes the cluster gauges from the database on a fixed
// interval. Counters are incremented inline by the code paths they
// measure; only point-in-time gauges need this loop.
type Poller struct {
	client   *ent.Client
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	logger   *slog.Logger
}

// NewPoller creates a gauge poller reading through the given client.
func NewPoller(client *ent.Client, interval time.Duration) *Poller {
	return &Poller{
		client:   client,
		interval: interval,
		logger:   slog.Default().With("component", "metrics.poller"),
	}
}

// Start begins periodic gauge collection. An immediate pass runs before
// the first tick so scrapes right after startup see real values.
func (p *Poller) Start(ctx context.Context) {
	if p.cancel != nil {
		return
	}

	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	go p.run(ctx)

	p.logger.Info("Metrics poller started", "interval", p.interval.String())
}

// Stop halts collection and waits for the in-flight pass to finish.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}

	p.cancel()
	<-p.done

	p.logger.Info("Metrics poller stopped")
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	p.collect(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.collect(ctx)
		}
	}
}

func (p *Poller) collect(ctx context.Context) {
	if err := p.collectTasks(ctx); err != nil {
		p.logger.Error("Failed to collect task gauges", "error", err)
	}

	if err := p.collectAgents(ctx); err != nil {
		p.logger.Error("Failed to collect agent gauges", "error", err)
	}

	if err := p.collectCampaigns(ctx); err != nil {
		p.logger.Error("Failed to collect campaign gauges", "error", err)
	}
}

func (p *Poller) collectTasks(ctx context.Context) error {
	var rows []struct {
		State string `json:"state"`
		Count int    `json:"count"`
	}

	err := p.client.Task.Query().
		GroupBy(task.FieldState).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.State] = row.Count
	}

	for _, s := range gaugeStates {
		TasksByState.WithLabelValues(string(s)).Set(float64(counts[string(s)]))
	}

	QueueDepth.Set(float64(counts[string(task.StatePending)]))

	return nil
}

func (p *Poller) collectAgents(ctx context.Context) error {
	n, err := p.client.Agent.Query().
		Where(agent.StateEQ(agent.StateActive)).
		Count(ctx)
	if err != nil {
		return err
	}

	ActiveAgents.Set(float64(n))

	return nil
}

func (p *Poller) collectCampaigns(ctx context.Context) error {
	n, err := p.client.Campaign.Query().
		Where(campaign.StateEQ(campaign.StateActive)).
		Count(ctx)
	if err != nil {
		return err
	}

	ActiveCampaigns.Set(float64(n))

	return nil
}
