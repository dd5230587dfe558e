package e2e

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// TestDictionaryExhaustion walks one attack to the end of its keyspace
// slice by slice: 1000 words x 20 rules at 100 H/s cuts into 6000-6000-8000,
// and draining the last slice exhausts the attack and completes the
// campaign.
func TestDictionaryExhaustion(t *testing.T) {
	app := NewTestApp(t)
	fx := seedDictionaryCampaign(t, app, "exhaustion", []string{
		"5f4dcc3b5aa765d61d8327deb882cf99",
	}, 1000, 20, "routine")

	agentID, agent := registerAgent(t, app, "rig-10.lab", fx.ProjectID)
	submitBenchmark(t, agent, agentID, 0, 100)

	wantSlices := [][2]int64{{0, 6000}, {6000, 6000}, {12000, 8000}}
	for i, want := range wantSlices {
		var task models.TaskResponse
		agent.get("/api/v1/client/tasks/next", &task, http.StatusOK)
		require.NotZero(t, task.ID, "slice %d", i)
		require.NotNil(t, task.Skip, "slice %d", i)
		require.NotNil(t, task.Limit, "slice %d", i)
		assert.Equal(t, want[0], *task.Skip, "slice %d", i)
		assert.Equal(t, want[1], *task.Limit, "slice %d", i)

		agent.post(fmt.Sprintf("/api/v1/client/tasks/%d/status", task.ID),
			statusFrame(*task.Limit, *task.Limit), nil, http.StatusNoContent)
		agent.post(fmt.Sprintf("/api/v1/client/tasks/%d/exhausted", task.ID),
			nil, nil, http.StatusNoContent)
	}

	var atk entityRef
	app.Operator().get(fmt.Sprintf("/api/v1/attacks/%d", fx.AttackID), &atk, http.StatusOK)
	assert.Equal(t, "exhausted", atk.State)

	var camp entityRef
	app.Operator().get(fmt.Sprintf("/api/v1/campaigns/%d", fx.CampaignID), &camp, http.StatusOK)
	assert.Equal(t, "completed", camp.State)

	var status models.TaskStatusResponse
	agent.get("/api/v1/client/tasks/next", &status, http.StatusOK)
	assert.Equal(t, "no_work", status.Status)
}

// TestFullCrackCascade recovers every hash mid-slice. The final crack
// completes the task, the attack and the campaign without the agent
// ever reporting exhaustion.
func TestFullCrackCascade(t *testing.T) {
	app := NewTestApp(t)
	cracks := map[string]string{
		"5f4dcc3b5aa765d61d8327deb882cf99": "password",
		"098f6bcd4621d373cade4e832627b4f6": "test",
		"900150983cd24fb0d6963f7d28e17f72": "abc",
	}
	hashes := make([]string, 0, len(cracks))
	for h := range cracks {
		hashes = append(hashes, h)
	}
	fx := seedDictionaryCampaign(t, app, "cascade", hashes, 1000, 10, "routine")

	agentID, agent := registerAgent(t, app, "rig-11.lab", fx.ProjectID)
	submitBenchmark(t, agent, agentID, 0, 100_000_000)

	var task models.TaskResponse
	agent.get("/api/v1/client/tasks/next", &task, http.StatusOK)
	require.NotZero(t, task.ID)

	// Two of three first; the list stays partially uncracked.
	first := hashes[:2]
	batch := make([]map[string]any, 0, 2)
	for _, h := range first {
		batch = append(batch, map[string]any{
			"timestamp": time.Now().UTC(), "hash": h, "plain_text": cracks[h],
		})
	}
	agent.post(fmt.Sprintf("/api/v1/client/tasks/%d/cracks", task.ID),
		map[string]any{"cracks": batch}, nil, http.StatusNoContent)

	var hl entityRef
	app.Operator().get(fmt.Sprintf("/api/v1/hash_lists/%d", fx.HashListID), &hl, http.StatusOK)
	assert.Equal(t, int64(1), hl.UncrackedCount)

	// Zaps carry what fell so far so the agent can prune its target set.
	code, zaps := agent.getText(fmt.Sprintf("/api/v1/client/tasks/%d/zaps", task.ID))
	require.Equal(t, http.StatusOK, code)
	for _, h := range first {
		assert.Contains(t, zaps, h)
	}
	assert.NotContains(t, zaps, hashes[2])

	// The last crack finishes everything upward.
	agent.post(fmt.Sprintf("/api/v1/client/tasks/%d/cracks", task.ID),
		map[string]any{"cracks": []map[string]any{{
			"timestamp": time.Now().UTC(), "hash": hashes[2], "plain_text": cracks[hashes[2]],
		}}}, nil, http.StatusNoContent)

	var atk entityRef
	app.Operator().get(fmt.Sprintf("/api/v1/attacks/%d", fx.AttackID), &atk, http.StatusOK)
	assert.Equal(t, "completed", atk.State)

	var camp entityRef
	app.Operator().get(fmt.Sprintf("/api/v1/campaigns/%d", fx.CampaignID), &camp, http.StatusOK)
	assert.Equal(t, "completed", camp.State)

	app.Operator().get(fmt.Sprintf("/api/v1/hash_lists/%d", fx.HashListID), &hl, http.StatusOK)
	assert.Equal(t, int64(0), hl.UncrackedCount)
}

// TestLeaseExpiryReassignment expires a lease by backdating the task's
// activity timestamp, then verifies the sweeper returns the exact same
// slice to the pool for the next agent.
func TestLeaseExpiryReassignment(t *testing.T) {
	app := NewTestApp(t)
	fx := seedDictionaryCampaign(t, app, "lease", []string{
		"5f4dcc3b5aa765d61d8327deb882cf99",
	}, 1000, 20, "routine")

	crashedID, crashed := registerAgent(t, app, "rig-12.lab", fx.ProjectID)
	submitBenchmark(t, crashed, crashedID, 0, 100)

	var task models.TaskResponse
	crashed.get("/api/v1/client/tasks/next", &task, http.StatusOK)
	require.NotNil(t, task.Skip)

	ctx := context.Background()
	_, err := app.Ent.Task.UpdateOneID(int(task.ID)).
		SetActivityTimestamp(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	reclaimed, err := app.Sweeper.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reclaimed)

	// A second pass finds nothing; reclamation is one-shot per lease.
	reclaimed, err = app.Sweeper.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, reclaimed)

	// The crashed agent's late report bounces.
	code := crashed.do(http.MethodPost,
		fmt.Sprintf("/api/v1/client/tasks/%d/exhausted", task.ID), nil, nil)
	assert.Equal(t, http.StatusConflict, code)

	heirID, heir := registerAgent(t, app, "rig-13.lab", fx.ProjectID)
	submitBenchmark(t, heir, heirID, 0, 100)

	var retaken models.TaskResponse
	heir.get("/api/v1/client/tasks/next", &retaken, http.StatusOK)
	require.NotNil(t, retaken.Skip)
	assert.Equal(t, task.ID, retaken.ID)
	assert.Equal(t, *task.Skip, *retaken.Skip)
	assert.Equal(t, *task.Limit, *retaken.Limit)
}

// TestVoluntaryAbandon hands a slice back on the agent's own request
// and verifies it comes out of the pool again before fresh keyspace.
func TestVoluntaryAbandon(t *testing.T) {
	app := NewTestApp(t)
	fx := seedDictionaryCampaign(t, app, "abandon", []string{
		"5f4dcc3b5aa765d61d8327deb882cf99",
	}, 1000, 20, "routine")

	agentID, agent := registerAgent(t, app, "rig-14.lab", fx.ProjectID)
	submitBenchmark(t, agent, agentID, 0, 100)

	var task models.TaskResponse
	agent.get("/api/v1/client/tasks/next", &task, http.StatusOK)
	require.NotNil(t, task.Skip)

	agent.post(fmt.Sprintf("/api/v1/client/tasks/%d/abandon", task.ID),
		nil, nil, http.StatusNoContent)

	// The lease is gone; a straggling status frame is rejected.
	code := agent.do(http.MethodPost,
		fmt.Sprintf("/api/v1/client/tasks/%d/status", task.ID),
		statusFrame(100, 6000), nil)
	assert.Equal(t, http.StatusConflict, code)

	// Requeued slices dispatch before new keyspace is cut.
	var retaken models.TaskResponse
	agent.get("/api/v1/client/tasks/next", &retaken, http.StatusOK)
	assert.Equal(t, task.ID, retaken.ID)
	assert.Equal(t, *task.Skip, *retaken.Skip)
}

// TestAttackAbandonRewind pulls a live attack out of dispatch: its
// tasks are destroyed and its dispatch mark rewinds to zero.
func TestAttackAbandonRewind(t *testing.T) {
	app := NewTestApp(t)
	fx := seedDictionaryCampaign(t, app, "rewind", []string{
		"5f4dcc3b5aa765d61d8327deb882cf99",
	}, 1000, 20, "routine")

	agentID, agent := registerAgent(t, app, "rig-15.lab", fx.ProjectID)
	submitBenchmark(t, agent, agentID, 0, 100)

	var task models.TaskResponse
	agent.get("/api/v1/client/tasks/next", &task, http.StatusOK)
	require.NotZero(t, task.ID)

	var atk entityRef
	app.Operator().post(fmt.Sprintf("/api/v1/attacks/%d/abandon", fx.AttackID),
		nil, &atk, http.StatusOK)
	assert.Equal(t, "pending", atk.State)

	// Nothing of the old dispatch survives.
	code := agent.do(http.MethodPost,
		fmt.Sprintf("/api/v1/client/tasks/%d/exhausted", task.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, code)

	// Dispatch starts over from offset zero.
	var fresh models.TaskResponse
	agent.get("/api/v1/client/tasks/next", &fresh, http.StatusOK)
	require.NotNil(t, fresh.Skip)
	assert.NotEqual(t, task.ID, fresh.ID)
	assert.Zero(t, *fresh.Skip)
}

// TestPriorityPreemptsOrder gives one agent work from two campaigns and
// verifies the higher-priority one wins regardless of creation order.
func TestPriorityPreemptsOrder(t *testing.T) {
	app := NewTestApp(t)
	routine := seedDictionaryCampaign(t, app, "slow-burn", []string{
		"5f4dcc3b5aa765d61d8327deb882cf99",
	}, 1000, 10, "routine")
	flash := seedDictionaryCampaign(t, app, "incident", []string{
		"098f6bcd4621d373cade4e832627b4f6",
	}, 1000, 10, "flash")

	agentID, agent := registerAgent(t, app, "rig-16.lab", routine.ProjectID, flash.ProjectID)
	submitBenchmark(t, agent, agentID, 0, 100_000_000)

	var task models.TaskResponse
	agent.get("/api/v1/client/tasks/next", &task, http.StatusOK)
	assert.Equal(t, int64(flash.AttackID), task.AttackID)
}
