package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

func TestAgentService_RegistrationFlow(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAgentService(db.Client, newEngine(db.Client), nil)
	ctx := context.Background()

	project := seedProject(t, db.Client)

	pre, err := svc.PreRegister(ctx, PreRegisterRequest{
		Label:      "basement-rig",
		ProjectIDs: []int{project.ID},
	})
	require.NoError(t, err)
	assert.Contains(t, pre.RegistrationToken, RegistrationTokenPrefix)

	created, err := svc.GetAgent(ctx, int(pre.AgentID))
	require.NoError(t, err)
	assert.Equal(t, agent.StatePending, created.State)
	assert.Nil(t, created.Token)

	reg, err := svc.Register(ctx, RegisterRequest{
		Token:           pre.RegistrationToken,
		HostName:        "cracker-01",
		ClientSignature: "hashcat-agent/6.2.6",
		OperatingSystem: "linux",
		Devices:         []string{"RTX 4090", "RTX 4090"},
	})
	require.NoError(t, err)
	assert.Equal(t, pre.AgentID, reg.AgentID)
	assert.Contains(t, reg.Token, AgentTokenPrefix)
	require.Len(t, reg.Projects, 1)
	assert.Equal(t, project.Name, reg.Projects[0].Name)

	registered, err := svc.GetAgent(ctx, int(pre.AgentID))
	require.NoError(t, err)
	assert.Equal(t, "cracker-01", registered.HostName)
	assert.Nil(t, registered.RegistrationToken)

	// The registration token is one-time.
	_, err = svc.Register(ctx, RegisterRequest{
		Token:           pre.RegistrationToken,
		HostName:        "cracker-02",
		ClientSignature: "hashcat-agent/6.2.6",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentService_Authenticate(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAgentService(db.Client, newEngine(db.Client), nil)
	ctx := context.Background()

	pre, err := svc.PreRegister(ctx, PreRegisterRequest{})
	require.NoError(t, err)
	reg, err := svc.Register(ctx, RegisterRequest{
		Token:           pre.RegistrationToken,
		HostName:        "cracker-01",
		ClientSignature: "hashcat-agent/6.2.6",
	})
	require.NoError(t, err)

	a, err := svc.Authenticate(ctx, reg.Token)
	require.NoError(t, err)
	assert.Equal(t, int(reg.AgentID), a.ID)

	t.Run("wrong secret", func(t *testing.T) {
		tampered, err := NewAgentToken(int(reg.AgentID))
		require.NoError(t, err)
		_, err = svc.Authenticate(ctx, tampered)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown agent id", func(t *testing.T) {
		tok, err := NewAgentToken(999999)
		require.NoError(t, err)
		_, err = svc.Authenticate(ctx, tok)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "Bearer whatever")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_Heartbeat(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAgentService(db.Client, newEngine(db.Client), nil)
	ctx := context.Background()

	t.Run("pending agent activates", func(t *testing.T) {
		pre, err := svc.PreRegister(ctx, PreRegisterRequest{})
		require.NoError(t, err)

		resp, err := svc.Heartbeat(ctx, int(pre.AgentID), "")
		require.NoError(t, err)
		assert.Equal(t, models.CommandContinue, resp.Command)

		a, err := svc.GetAgent(ctx, int(pre.AgentID))
		require.NoError(t, err)
		assert.Equal(t, agent.StateActive, a.State)
	})

	t.Run("reported error is recorded", func(t *testing.T) {
		project := seedProject(t, db.Client)
		ag := seedActiveAgent(t, db.Client, project.ID)

		_, err := svc.Heartbeat(ctx, ag.ID, "error")
		require.NoError(t, err)
		a, err := svc.GetAgent(ctx, ag.ID)
		require.NoError(t, err)
		assert.Equal(t, agent.StateError, a.State)

		// A healthy heartbeat recovers it.
		_, err = svc.Heartbeat(ctx, ag.ID, "")
		require.NoError(t, err)
		a, err = svc.GetAgent(ctx, ag.ID)
		require.NoError(t, err)
		assert.Equal(t, agent.StateActive, a.State)
	})

	t.Run("stopped agent is told to stop", func(t *testing.T) {
		project := seedProject(t, db.Client)
		ag := seedActiveAgent(t, db.Client, project.ID)
		_, err := svc.Disable(ctx, ag.ID)
		require.NoError(t, err)

		resp, err := svc.Heartbeat(ctx, ag.ID, "")
		require.NoError(t, err)
		assert.Equal(t, models.CommandStop, resp.Command)

		a, err := svc.GetAgent(ctx, ag.ID)
		require.NoError(t, err)
		assert.Equal(t, agent.StateStopped, a.State)
	})

	t.Run("task signals map to commands", func(t *testing.T) {
		project := seedProject(t, db.Client)
		hashList := seedHashList(t, db.Client, project.ID, 10, 10)
		camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
		wordList := seedWordList(t, db.Client, project.ID, 1000)
		atk := seedRunningAttack(t, db.Client, camp.ID, wordList.ID, 1000)
		ag := seedActiveAgent(t, db.Client, project.ID)

		held := seedLeasedTask(t, db.Client, atk.ID, ag.ID, task.StateRunning, 0, 1000)

		resp, err := svc.Heartbeat(ctx, ag.ID, "")
		require.NoError(t, err)
		assert.Equal(t, models.CommandContinue, resp.Command)

		db.Client.Task.UpdateOneID(held.ID).
			SetAgentSignal(task.AgentSignalPause).
			ExecX(ctx)
		resp, err = svc.Heartbeat(ctx, ag.ID, "")
		require.NoError(t, err)
		assert.Equal(t, models.CommandPause, resp.Command)

		db.Client.Task.UpdateOneID(held.ID).
			SetAgentSignal(task.AgentSignalStop).
			ExecX(ctx)
		resp, err = svc.Heartbeat(ctx, ag.ID, "")
		require.NoError(t, err)
		assert.Equal(t, models.CommandStop, resp.Command)
	})
}

func TestAgentService_Shutdown(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAgentService(db.Client, newEngine(db.Client), nil)
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 10, 10)
	camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
	wordList := seedWordList(t, db.Client, project.ID, 1000)
	atk := seedRunningAttack(t, db.Client, camp.ID, wordList.ID, 1000)
	ag := seedActiveAgent(t, db.Client, project.ID)
	running := seedLeasedTask(t, db.Client, atk.ID, ag.ID, task.StateRunning, 0, 500)
	paused := seedLeasedTask(t, db.Client, atk.ID, ag.ID, task.StatePaused, 500, 1000)

	require.NoError(t, svc.Shutdown(ctx, ag.ID))

	a, err := svc.GetAgent(ctx, ag.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StateStopped, a.State)

	// The running task went back to the pool with its offsets intact.
	released := db.Client.Task.GetX(ctx, running.ID)
	assert.Equal(t, task.StatePending, released.State)
	assert.Nil(t, released.AgentID)
	assert.Equal(t, int64(0), released.KeyspaceOffset)

	// The paused one dropped its lease and is marked stale.
	parked := db.Client.Task.GetX(ctx, paused.ID)
	assert.Equal(t, task.StatePaused, parked.State)
	assert.Nil(t, parked.AgentID)
	assert.True(t, parked.Stale)
}

func TestAgentService_EnableDisable(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAgentService(db.Client, newEngine(db.Client), nil)
	ctx := context.Background()

	project := seedProject(t, db.Client)
	ag := seedActiveAgent(t, db.Client, project.ID)

	disabled, err := svc.Disable(ctx, ag.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StateStopped, disabled.State)

	enabled, err := svc.Enable(ctx, ag.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StateActive, enabled.State)

	// Enabling an active agent is a no-op, not an error.
	again, err := svc.Enable(ctx, ag.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StateActive, again.State)

	_, err = svc.Disable(ctx, 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentService_ReportError(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAgentService(db.Client, newEngine(db.Client), nil)
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 10, 10)
	camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
	wordList := seedWordList(t, db.Client, project.ID, 1000)
	atk := seedRunningAttack(t, db.Client, camp.ID, wordList.ID, 1000)
	ag := seedActiveAgent(t, db.Client, project.ID)

	t.Run("validates severity", func(t *testing.T) {
		err := svc.ReportError(ctx, ag.ID, nil, models.ErrorSubmission{
			Severity: "catastrophic",
			Message:  "gpu melted",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("validates message", func(t *testing.T) {
		err := svc.ReportError(ctx, ag.ID, nil, models.ErrorSubmission{Severity: "warning"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("warning leaves task alone", func(t *testing.T) {
		held := seedLeasedTask(t, db.Client, atk.ID, ag.ID, task.StateRunning, 0, 500)
		err := svc.ReportError(ctx, ag.ID, &held.ID, models.ErrorSubmission{
			Severity: "warning",
			Message:  "temperature throttling",
			Context:  map[string]any{"device": 1, "temperature": 92},
		})
		require.NoError(t, err)
		assert.Equal(t, task.StateRunning, db.Client.Task.GetX(ctx, held.ID).State)
	})

	t.Run("fatal fails the task and attack", func(t *testing.T) {
		held := db.Client.Task.Query().
			Where(task.AgentID(ag.ID), task.StateEQ(task.StateRunning)).
			OnlyX(ctx)
		err := svc.ReportError(ctx, ag.ID, &held.ID, models.ErrorSubmission{
			Severity: "fatal",
			Message:  "hashcat segfault",
		})
		require.NoError(t, err)
		assert.Equal(t, task.StateFailed, db.Client.Task.GetX(ctx, held.ID).State)
		assert.Equal(t, attack.StateFailed, db.Client.Attack.GetX(ctx, atk.ID).State)
	})

	t.Run("unknown task rejects", func(t *testing.T) {
		missing := 999999
		err := svc.ReportError(ctx, ag.ID, &missing, models.ErrorSubmission{
			Severity: "minor",
			Message:  "resource checksum mismatch",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_DeleteAgent(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAgentService(db.Client, newEngine(db.Client), nil)
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 10, 10)
	camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
	wordList := seedWordList(t, db.Client, project.ID, 1000)
	atk := seedRunningAttack(t, db.Client, camp.ID, wordList.ID, 1000)
	ag := seedActiveAgent(t, db.Client, project.ID)
	held := seedLeasedTask(t, db.Client, atk.ID, ag.ID, task.StateRunning, 0, 500)

	require.NoError(t, svc.DeleteAgent(ctx, ag.ID))

	_, err := svc.GetAgent(ctx, ag.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The held slice survives, unleased.
	released := db.Client.Task.GetX(ctx, held.ID)
	assert.Equal(t, task.StatePending, released.State)
	assert.Nil(t, released.AgentID)
}
