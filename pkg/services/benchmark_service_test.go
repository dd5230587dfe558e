package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent/benchmark"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

func TestBenchmarkService_Submit(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewBenchmarkService(db.Client, nil, 0)
	ctx := context.Background()

	project := seedProject(t, db.Client)
	ag := seedActiveAgent(t, db.Client, project.ID)

	err := svc.Submit(ctx, ag.ID, models.BenchmarkSubmission{
		HashcatBenchmarks: []models.BenchmarkRecord{
			{HashType: 1000, Device: 1, HashSpeed: 50e9, RuntimeMs: 5000},
			{HashType: 1000, Device: 2, HashSpeed: 48e9, RuntimeMs: 5000},
			{HashType: 22000, Device: 1, HashSpeed: 1.2e6, RuntimeMs: 9000},
		},
	})
	require.NoError(t, err)

	rows := db.Client.Benchmark.Query().
		Where(benchmark.AgentID(ag.ID)).
		CountX(ctx)
	assert.Equal(t, 3, rows)

	t.Run("resubmit replaces per device", func(t *testing.T) {
		err := svc.Submit(ctx, ag.ID, models.BenchmarkSubmission{
			HashcatBenchmarks: []models.BenchmarkRecord{
				{HashType: 1000, Device: 1, HashSpeed: 60e9, RuntimeMs: 4000},
			},
		})
		require.NoError(t, err)

		rows := db.Client.Benchmark.Query().
			Where(benchmark.AgentID(ag.ID), benchmark.HashTypeEQ(1000)).
			AllX(ctx)
		require.Len(t, rows, 2)
		for _, row := range rows {
			if row.Device == 1 {
				assert.Equal(t, 60e9, row.HashSpeed)
			}
		}
	})

	t.Run("empty submission rejected", func(t *testing.T) {
		err := svc.Submit(ctx, ag.ID, models.BenchmarkSubmission{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("negative speed names the record", func(t *testing.T) {
		err := svc.Submit(ctx, ag.ID, models.BenchmarkSubmission{
			HashcatBenchmarks: []models.BenchmarkRecord{
				{HashType: 1000, Device: 1, HashSpeed: 50e9},
				{HashType: 1000, Device: 2, HashSpeed: -1},
			},
		})
		require.True(t, IsValidationError(err))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "hashcat_benchmarks[1].hash_speed", verr.Field)
	})
}

func TestBenchmarkService_AggregateSpeed(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewBenchmarkService(db.Client, nil, 0)
	ctx := context.Background()

	project := seedProject(t, db.Client)
	ag := seedActiveAgent(t, db.Client, project.ID)

	speed, _, ok, err := svc.AggregateSpeed(ctx, ag.ID, 1000)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, speed)

	err = svc.Submit(ctx, ag.ID, models.BenchmarkSubmission{
		HashcatBenchmarks: []models.BenchmarkRecord{
			{HashType: 1000, Device: 1, HashSpeed: 50e9, RuntimeMs: 5000},
			{HashType: 1000, Device: 2, HashSpeed: 48e9, RuntimeMs: 5000},
		},
	})
	require.NoError(t, err)

	speed, measuredAt, ok, err := svc.AggregateSpeed(ctx, ag.ID, 1000)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 98e9, speed)
	assert.WithinDuration(t, time.Now(), measuredAt, 5*time.Second)

	// Devices benchmarked for other hash types do not leak in.
	_, _, ok, err = svc.AggregateSpeed(ctx, ag.ID, 22000)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBenchmarkService_Freshness(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	project := seedProject(t, db.Client)
	ag := seedActiveAgent(t, db.Client, project.ID)

	fresh := NewBenchmarkService(db.Client, nil, 0)
	err := fresh.Submit(ctx, ag.ID, models.BenchmarkSubmission{
		HashcatBenchmarks: []models.BenchmarkRecord{
			{HashType: 1000, Device: 1, HashSpeed: 50e9, RuntimeMs: 5000},
		},
	})
	require.NoError(t, err)

	ok, err := fresh.HasFresh(ctx, ag.ID, 1000)
	require.NoError(t, err)
	assert.True(t, ok)

	speed, ok, err := fresh.FreshSpeed(ctx, ag.ID, 1000)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 50e9, speed)

	// The same rows through a service with a nanosecond window are stale.
	stale := NewBenchmarkService(db.Client, nil, time.Nanosecond)
	ok, err = stale.HasFresh(ctx, ag.ID, 1000)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = stale.FreshSpeed(ctx, ag.ID, 1000)
	require.NoError(t, err)
	assert.False(t, ok)
}
