package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// DefaultBenchmarkMaxAge is the freshness window for matcher gating.
const DefaultBenchmarkMaxAge = 168 * time.Hour

// BenchmarkService stores per-device speed measurements and answers the
// matcher's benchmark gate. A submission replaces earlier rows for the
// same (agent, hash_type, device).
type BenchmarkService struct {
	client *ent.Client
	pub    Broadcaster
	maxAge time.Duration
	logger *slog.Logger
}

// NewBenchmarkService creates a new BenchmarkService. maxAge <= 0 means
// the default freshness window. pub may be nil.
func NewBenchmarkService(client *ent.Client, pub Broadcaster, maxAge time.Duration) *BenchmarkService {
	if maxAge <= 0 {
		maxAge = DefaultBenchmarkMaxAge
	}
	return &BenchmarkService{
		client: client,
		pub:    pub,
		maxAge: maxAge,
		logger: slog.With("component", "benchmark_service"),
	}
}

// Submit stores a bulk benchmark upload in one transaction.
func (s *BenchmarkService) Submit(httpCtx context.Context, agentID int, sub models.BenchmarkSubmission) error {
	if len(sub.HashcatBenchmarks) == 0 {
		return NewValidationError("hashcat_benchmarks", "required")
	}
	for i, rec := range sub.HashcatBenchmarks {
		if rec.HashType < 0 {
			return NewValidationError(fmt.Sprintf("hashcat_benchmarks[%d].hash_type", i), "must not be negative")
		}
		if rec.Device < 0 {
			return NewValidationError(fmt.Sprintf("hashcat_benchmarks[%d].device", i), "must not be negative")
		}
		if rec.HashSpeed <= 0 {
			return NewValidationError(fmt.Sprintf("hashcat_benchmarks[%d].hash_speed", i), "must be positive")
		}
		if rec.RuntimeMs < 0 {
			return NewValidationError(fmt.Sprintf("hashcat_benchmarks[%d].runtime_ms", i), "must not be negative")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	hashTypes := make(map[int]struct{}, len(sub.HashcatBenchmarks))
	for _, rec := range sub.HashcatBenchmarks {
		err := tx.Benchmark.Create().
			SetAgentID(agentID).
			SetHashType(rec.HashType).
			SetDevice(rec.Device).
			SetHashSpeed(rec.HashSpeed).
			SetRuntimeMs(rec.RuntimeMs).
			SetMeasuredAt(now).
			OnConflictColumns(benchmark.FieldAgentID, benchmark.FieldHashType, benchmark.FieldDevice).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to store benchmark (%d, %d): %w", rec.HashType, rec.Device, err)
		}
		hashTypes[rec.HashType] = struct{}{}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit benchmarks: %w", err)
	}

	s.publishSubmitted(ctx, agentID, hashTypes)
	return nil
}

// AggregateSpeed sums the agent's per-device speeds for a hash type.
// ok is false when no measurement exists at all.
func (s *BenchmarkService) AggregateSpeed(ctx context.Context, agentID, hashType int) (float64, time.Time, bool, error) {
	rows, err := s.client.Benchmark.Query().
		Where(benchmark.AgentID(agentID), benchmark.HashTypeEQ(hashType)).
		All(ctx)
	if err != nil {
		return 0, time.Time{}, false, fmt.Errorf("failed to query benchmarks: %w", err)
	}
	if len(rows) == 0 {
		return 0, time.Time{}, false, nil
	}
	var speed float64
	var newest time.Time
	for _, row := range rows {
		speed += row.HashSpeed
		if row.MeasuredAt.After(newest) {
			newest = row.MeasuredAt
		}
	}
	return speed, newest, true, nil
}

// FreshSpeed returns the aggregate speed when the newest measurement is
// inside the freshness window; ok is false for missing or stale data.
func (s *BenchmarkService) FreshSpeed(ctx context.Context, agentID, hashType int) (float64, bool, error) {
	speed, newest, ok, err := s.AggregateSpeed(ctx, agentID, hashType)
	if err != nil || !ok {
		return 0, false, err
	}
	if time.Since(newest) > s.maxAge {
		return 0, false, nil
	}
	return speed, true, nil
}

// HasFresh answers the matcher's benchmark gate.
func (s *BenchmarkService) HasFresh(ctx context.Context, agentID, hashType int) (bool, error) {
	_, ok, err := s.FreshSpeed(ctx, agentID, hashType)
	return ok, err
}

func (s *BenchmarkService) publishSubmitted(ctx context.Context, agentID int, hashTypes map[int]struct{}) {
	if s.pub == nil {
		return
	}
	types := make([]int, 0, len(hashTypes))
	for ht := range hashTypes {
		types = append(types, ht)
	}
	payload := events.BenchmarkSubmittedPayload{
		Type:      events.EventTypeBenchmarkSubmitted,
		AgentID:   agentID,
		HashTypes: types,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.pub.PublishBenchmarkSubmitted(ctx, payload); err != nil {
		s.logger.Warn("benchmark publish failed", "agent_id", agentID, "error", err)
	}
}
