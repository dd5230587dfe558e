package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/task"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

// taskFixture wires one leased running task plus the service under test.
type taskFixture struct {
	client   *ent.Client
	svc      *TaskService
	hashList *ent.HashList
	agent    *ent.Agent
	attack   *ent.Attack
	task     *ent.Task
}

func newTaskFixture(t *testing.T, client *ent.Client) *taskFixture {
	t.Helper()
	project := seedProject(t, client)
	hashList := seedHashList(t, client, project.ID, 100, 100)
	camp := seedActiveCampaign(t, client, project.ID, hashList.ID)
	wordList := seedWordList(t, client, project.ID, 50000)
	atk := seedRunningAttack(t, client, camp.ID, wordList.ID, 50000)
	ag := seedActiveAgent(t, client, project.ID)
	tk := seedLeasedTask(t, client, atk.ID, ag.ID, task.StateRunning, 0, 50000)

	return &taskFixture{
		client:   client,
		svc:      NewTaskService(client, newEngine(client)),
		hashList: hashList,
		agent:    ag,
		attack:   atk,
		task:     tk,
	}
}

func TestTaskService_ReportExhausted(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newTaskFixture(t, db.Client)
	ctx := context.Background()

	err := fx.svc.ReportExhausted(ctx, fx.agent.ID, fx.task.ID)
	require.NoError(t, err)

	refreshed := fx.client.Task.GetX(ctx, fx.task.ID)
	assert.Equal(t, task.StateExhausted, refreshed.State)
	assert.InDelta(t, 100.0, refreshed.ProgressPercentage, 0.01)

	// The only slice covered the whole keyspace, so the attack follows.
	assert.Equal(t, attack.StateExhausted, fx.client.Attack.GetX(ctx, fx.attack.ID).State)
}

func TestTaskService_ReportCompleted(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newTaskFixture(t, db.Client)
	ctx := context.Background()

	err := fx.svc.ReportCompleted(ctx, fx.agent.ID, fx.task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StateCompleted, fx.client.Task.GetX(ctx, fx.task.ID).State)
}

func TestTaskService_Abandon(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newTaskFixture(t, db.Client)
	ctx := context.Background()

	err := fx.svc.Abandon(ctx, fx.agent.ID, fx.task.ID)
	require.NoError(t, err)

	refreshed := fx.client.Task.GetX(ctx, fx.task.ID)
	assert.Equal(t, task.StatePending, refreshed.State)
	assert.Nil(t, refreshed.AgentID)
	assert.Zero(t, refreshed.ProgressPercentage)
}

func TestTaskService_RejectsNonHolder(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newTaskFixture(t, db.Client)
	ctx := context.Background()

	intruder := seedActiveAgent(t, fx.client)

	for name, report := range map[string]func(context.Context, int, int) error{
		"exhausted": fx.svc.ReportExhausted,
		"completed": fx.svc.ReportCompleted,
		"abandon":   fx.svc.Abandon,
		"cancel":    fx.svc.ConfirmCancel,
	} {
		t.Run(name, func(t *testing.T) {
			err := report(ctx, intruder.ID, fx.task.ID)
			assert.ErrorIs(t, err, ErrLeaseNotHeld)
		})
	}

	// None of the rejected reports moved the task.
	assert.Equal(t, task.StateRunning, fx.client.Task.GetX(ctx, fx.task.ID).State)
}

func TestTaskService_ConfirmCancel(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newTaskFixture(t, db.Client)
	ctx := context.Background()

	err := fx.svc.ConfirmCancel(ctx, fx.agent.ID, fx.task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StateFailed, fx.client.Task.GetX(ctx, fx.task.ID).State)

	// Confirming again is a no-op, even from another agent: the signal
	// was already honored.
	require.NoError(t, fx.svc.ConfirmCancel(ctx, fx.agent.ID, fx.task.ID))
	intruder := seedActiveAgent(t, fx.client)
	require.NoError(t, fx.svc.ConfirmCancel(ctx, intruder.ID, fx.task.ID))
}

func TestTaskService_GuardRejectsTerminalReplay(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newTaskFixture(t, db.Client)
	ctx := context.Background()

	require.NoError(t, fx.svc.ReportCompleted(ctx, fx.agent.ID, fx.task.ID))

	// Completed tasks keep their lease reference, so the holder check
	// passes and the state guard does the rejecting.
	err := fx.svc.ReportExhausted(ctx, fx.agent.ID, fx.task.ID)
	assert.ErrorIs(t, err, ErrGuardRejected)
}

func TestTaskService_NotFound(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newTaskFixture(t, db.Client)
	ctx := context.Background()

	assert.ErrorIs(t, fx.svc.ReportCompleted(ctx, fx.agent.ID, 99999), ErrNotFound)
	assert.ErrorIs(t, fx.svc.ConfirmCancel(ctx, fx.agent.ID, 99999), ErrNotFound)

	_, err := fx.svc.GetTask(ctx, 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_HashListID(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newTaskFixture(t, db.Client)
	ctx := context.Background()

	id, err := fx.svc.HashListID(ctx, fx.agent.ID, fx.task.ID)
	require.NoError(t, err)
	assert.Equal(t, fx.hashList.ID, id)

	intruder := seedActiveAgent(t, fx.client)
	_, err = fx.svc.HashListID(ctx, intruder.ID, fx.task.ID)
	assert.ErrorIs(t, err, ErrLeaseNotHeld)
}
