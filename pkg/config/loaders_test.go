package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDispatchConfig(t *testing.T) {
	cfg := DefaultDispatchConfig()

	assert.Equal(t, 60*time.Second, cfg.SliceTarget)
	assert.Equal(t, 30*time.Second, cfg.SliceMinDuration)
	assert.Equal(t, 120*time.Second, cfg.SliceMaxDuration)
	assert.Equal(t, 30*time.Minute, cfg.LeaseTTL)
	assert.Equal(t, 60*time.Second, cfg.SweepInterval)
	assert.Equal(t, 10*time.Second, cfg.SweepJitter)
	assert.Equal(t, 168*time.Hour, cfg.BenchmarkMaxAge)
	assert.False(t, cfg.ExhaustToCompleted)
}

func TestLoadDispatchFromEnv(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DISPATCH_LEASE_TTL", "45m")
		t.Setenv("DISPATCH_EXHAUST_TO_COMPLETED", "true")
		t.Setenv("BENCHMARK_MAX_AGE", "24h")

		cfg, err := LoadDispatchFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 45*time.Minute, cfg.LeaseTTL)
		assert.True(t, cfg.ExhaustToCompleted)
		assert.Equal(t, 24*time.Hour, cfg.BenchmarkMaxAge)
		// Untouched keys keep their defaults.
		assert.Equal(t, 60*time.Second, cfg.SweepInterval)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("DISPATCH_LEASE_TTL", "soon")

		_, err := LoadDispatchFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DISPATCH_LEASE_TTL")
	})

	t.Run("min above max rejected", func(t *testing.T) {
		t.Setenv("DISPATCH_SLICE_MIN_DURATION", "5m")
		t.Setenv("DISPATCH_SLICE_MAX_DURATION", "1m")

		_, err := LoadDispatchFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DISPATCH_SLICE_MIN_DURATION")
	})
}

func TestLoadServerFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadServerFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, float64(1), cfg.PollRate)
		assert.Equal(t, 5, cfg.PollBurst)
		assert.Equal(t, 30, cfg.BackoffSeconds)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("AGENT_POLL_RATE", "0.5")
		t.Setenv("AGENT_BACKOFF_SECONDS", "60")

		cfg, err := LoadServerFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, 0.5, cfg.PollRate)
		assert.Equal(t, 60, cfg.BackoffSeconds)
	})

	t.Run("invalid rate", func(t *testing.T) {
		t.Setenv("AGENT_POLL_RATE", "fast")

		_, err := LoadServerFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AGENT_POLL_RATE")
	})
}

func TestLoadRetentionFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadRetentionFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.StatusRetention)
		assert.Equal(t, 30*24*time.Hour, cfg.AgentErrorWindow)
		assert.Equal(t, 7*24*time.Hour, cfg.EventWindow)
		assert.Equal(t, time.Hour, cfg.CleanupInterval)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RETENTION_STATUS_FRAMES", "25")
		t.Setenv("RETENTION_EVENT_WINDOW", "48h")

		cfg, err := LoadRetentionFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.StatusRetention)
		assert.Equal(t, 48*time.Hour, cfg.EventWindow)
	})
}

func TestLoadStorageFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadStorageFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
		assert.Empty(t, cfg.SigningSecret)
		assert.Equal(t, 15*time.Minute, cfg.URLTTL)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORAGE_BASE_URL", "https://swarm.example.com")
		t.Setenv("STORAGE_SIGNING_SECRET", "sekrit")
		t.Setenv("STORAGE_URL_TTL", "1h")

		cfg, err := LoadStorageFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "https://swarm.example.com", cfg.BaseURL)
		assert.Equal(t, "sekrit", cfg.SigningSecret)
		assert.Equal(t, time.Hour, cfg.URLTTL)
	})
}
