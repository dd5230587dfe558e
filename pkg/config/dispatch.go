package config

import (
	"fmt"
	"time"
)

// DispatchConfig controls task matching, slice sizing, and lease
// reclamation.
type DispatchConfig struct {
	// SliceTarget is the projected runtime a slice is sized for, given
	// the agent's benchmark speed.
	SliceTarget time.Duration

	// SliceMinDuration and SliceMaxDuration clamp SliceTarget. Slices
	// shorter than the minimum waste round-trips; longer ones hold
	// keyspace hostage to a single agent.
	SliceMinDuration time.Duration
	SliceMaxDuration time.Duration

	// LeaseTTL is how long a running task may go without any agent
	// activity before the sweeper takes it back.
	LeaseTTL time.Duration

	// SweepInterval is the base interval between reclamation passes.
	SweepInterval time.Duration

	// SweepJitter randomizes SweepInterval so replicas don't sweep in
	// lockstep. Actual interval: SweepInterval ± SweepJitter.
	SweepJitter time.Duration

	// BenchmarkMaxAge is how old a benchmark may be and still gate an
	// agent into work for that hash type.
	BenchmarkMaxAge time.Duration

	// ExhaustToCompleted reports exhausted tasks and attacks as
	// completed, matching the legacy wire behavior.
	ExhaustToCompleted bool
}

// DefaultDispatchConfig returns the built-in dispatch defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		SliceTarget:      60 * time.Second,
		SliceMinDuration: 30 * time.Second,
		SliceMaxDuration: 120 * time.Second,
		LeaseTTL:         30 * time.Minute,
		SweepInterval:    60 * time.Second,
		SweepJitter:      10 * time.Second,
		BenchmarkMaxAge:  168 * time.Hour,
	}
}

// LoadDispatchFromEnv loads dispatch configuration from environment
// variables, falling back to defaults.
func LoadDispatchFromEnv() (*DispatchConfig, error) {
	cfg := DefaultDispatchConfig()

	var err error
	if cfg.SliceTarget, err = durationEnv("DISPATCH_SLICE_TARGET", cfg.SliceTarget); err != nil {
		return nil, err
	}
	if cfg.SliceMinDuration, err = durationEnv("DISPATCH_SLICE_MIN_DURATION", cfg.SliceMinDuration); err != nil {
		return nil, err
	}
	if cfg.SliceMaxDuration, err = durationEnv("DISPATCH_SLICE_MAX_DURATION", cfg.SliceMaxDuration); err != nil {
		return nil, err
	}
	if cfg.LeaseTTL, err = durationEnv("DISPATCH_LEASE_TTL", cfg.LeaseTTL); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = durationEnv("DISPATCH_SWEEP_INTERVAL", cfg.SweepInterval); err != nil {
		return nil, err
	}
	if cfg.SweepJitter, err = durationEnv("DISPATCH_SWEEP_JITTER", cfg.SweepJitter); err != nil {
		return nil, err
	}
	if cfg.BenchmarkMaxAge, err = durationEnv("BENCHMARK_MAX_AGE", cfg.BenchmarkMaxAge); err != nil {
		return nil, err
	}
	if cfg.ExhaustToCompleted, err = boolEnv("DISPATCH_EXHAUST_TO_COMPLETED", cfg.ExhaustToCompleted); err != nil {
		return nil, err
	}

	if cfg.SliceMinDuration > cfg.SliceMaxDuration {
		return nil, fmt.Errorf("DISPATCH_SLICE_MIN_DURATION (%v) exceeds DISPATCH_SLICE_MAX_DURATION (%v)",
			cfg.SliceMinDuration, cfg.SliceMaxDuration)
	}
	return cfg, nil
}
