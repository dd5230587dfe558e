package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

// statusFixture wires one leased running task ready to receive frames.
type statusFixture struct {
	client *ent.Client
	svc    *StatusService
	agent  *ent.Agent
	attack *ent.Attack
	task   *ent.Task
}

func newStatusFixture(t *testing.T, client *ent.Client) *statusFixture {
	t.Helper()
	project := seedProject(t, client)
	hashList := seedHashList(t, client, project.ID, 100, 100)
	camp := seedActiveCampaign(t, client, project.ID, hashList.ID)
	wordList := seedWordList(t, client, project.ID, 100000)
	atk := seedRunningAttack(t, client, camp.ID, wordList.ID, 100000)
	ag := seedActiveAgent(t, client, project.ID)
	tk := seedLeasedTask(t, client, atk.ID, ag.ID, task.StateRunning, 0, 100000)

	return &statusFixture{
		client: client,
		svc:    NewStatusService(client, newEngine(client), nil, 0),
		agent:  ag,
		attack: atk,
		task:   tk,
	}
}

func frameAt(done, total int64) models.HashcatStatusFrame {
	return models.HashcatStatusFrame{
		Session:      "cs_000042",
		Status:       3,
		Target:       "hashes.txt",
		Progress:     []int64{done, total},
		RestorePoint: done,
		Devices: []models.DeviceStatus{
			{DeviceID: 1, DeviceName: "RTX 4090", DeviceType: "GPU", Speed: 50_000_000, Utilization: 98, Temperature: 71},
		},
		TimeStart:     time.Now().Add(-time.Minute),
		EstimatedStop: time.Now().Add(30 * time.Minute),
	}
}

func TestStatusService_Ingest(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newStatusFixture(t, db.Client)
	ctx := context.Background()

	before := fx.client.Task.GetX(ctx, fx.task.ID).ActivityTimestamp

	err := fx.svc.Ingest(ctx, fx.agent.ID, fx.task.ID, frameAt(25000, 100000))
	require.NoError(t, err)

	refreshed := fx.client.Task.GetX(ctx, fx.task.ID)
	assert.Equal(t, task.StateRunning, refreshed.State)
	assert.InDelta(t, 25.0, refreshed.ProgressPercentage, 0.01)
	require.NotNil(t, refreshed.EstimatedFinish)
	assert.False(t, refreshed.ActivityTimestamp.Before(before))

	frames, err := fx.svc.History(ctx, fx.task.ID)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, int64(25000), frames[0].ProgressDone)
	assert.Equal(t, "cs_000042", frames[0].Session)
	require.Len(t, frames[0].Devices, 1)
	assert.Equal(t, 71, frames[0].Devices[0].Temperature)
}

func TestStatusService_IngestPromotesPendingTask(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newStatusFixture(t, db.Client)
	ctx := context.Background()

	fx.client.Task.UpdateOneID(fx.task.ID).
		SetState(task.StatePending).
		ExecX(ctx)

	err := fx.svc.Ingest(ctx, fx.agent.ID, fx.task.ID, frameAt(1, 100000))
	require.NoError(t, err)
	assert.Equal(t, task.StateRunning, fx.client.Task.GetX(ctx, fx.task.ID).State)
}

func TestStatusService_IngestTrimsHistory(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newStatusFixture(t, db.Client)
	ctx := context.Background()

	for i := range 14 {
		err := fx.svc.Ingest(ctx, fx.agent.ID, fx.task.ID, frameAt(int64(i+1)*1000, 100000))
		require.NoError(t, err)
	}

	frames, err := fx.svc.History(ctx, fx.task.ID)
	require.NoError(t, err)
	require.Len(t, frames, DefaultStatusRetention)
	// Newest first; the oldest surviving frame is number 5 of 14.
	assert.Equal(t, int64(14000), frames[0].ProgressDone)
	assert.Equal(t, int64(5000), frames[len(frames)-1].ProgressDone)
}

func TestStatusService_IngestRejections(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newStatusFixture(t, db.Client)
	ctx := context.Background()

	t.Run("foreign agent", func(t *testing.T) {
		intruder := seedActiveAgent(t, fx.client)
		err := fx.svc.Ingest(ctx, intruder.ID, fx.task.ID, frameAt(1, 100000))
		assert.ErrorIs(t, err, ErrLeaseNotHeld)

		// The rejected frame left nothing behind.
		frames, err := fx.svc.History(ctx, fx.task.ID)
		require.NoError(t, err)
		assert.Empty(t, frames)
	})

	t.Run("paused task", func(t *testing.T) {
		fx.client.Task.UpdateOneID(fx.task.ID).
			SetState(task.StatePaused).
			ExecX(ctx)
		err := fx.svc.Ingest(ctx, fx.agent.ID, fx.task.ID, frameAt(1, 100000))
		assert.ErrorIs(t, err, ErrGuardRejected)
	})

	t.Run("completed task", func(t *testing.T) {
		fx.client.Task.UpdateOneID(fx.task.ID).
			SetState(task.StateCompleted).
			ExecX(ctx)
		err := fx.svc.Ingest(ctx, fx.agent.ID, fx.task.ID, frameAt(1, 100000))
		assert.ErrorIs(t, err, ErrGuardRejected)
	})

	t.Run("unknown task", func(t *testing.T) {
		err := fx.svc.Ingest(ctx, fx.agent.ID, 999999, frameAt(1, 100000))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStatusService_MaskListSuppressesEstimate(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newStatusFixture(t, db.Client)
	ctx := context.Background()

	maskList := seedMaskList(t, fx.client, 0, 500)
	fx.client.Attack.UpdateOneID(fx.attack.ID).
		SetAttackMode(attack.AttackModeMask).
		ClearWordListID().
		SetMaskListID(maskList.ID).
		ExecX(ctx)

	err := fx.svc.Ingest(ctx, fx.agent.ID, fx.task.ID, frameAt(1000, 100000))
	require.NoError(t, err)
	assert.Nil(t, fx.client.Task.GetX(ctx, fx.task.ID).EstimatedFinish)
}

func TestStatusService_ProgressBounds(t *testing.T) {
	cases := []struct {
		done, total int64
		want        float64
	}{
		{0, 0, 0},
		{50, 0, 0},
		{-5, 100, 0},
		{200, 100, 100},
		{50, 100, 50},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d of %d", tc.done, tc.total), func(t *testing.T) {
			assert.Equal(t, tc.want, progressPercent(tc.done, tc.total))
		})
	}
}
