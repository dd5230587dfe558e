package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

// fixture is one active campaign with a single running dictionary attack,
// an active agent and a counted word list, ready for lifecycle tests.
type fixture struct {
	client   *ent.Client
	project  *ent.Project
	hashList *ent.HashList
	campaign *ent.Campaign
	wordList *ent.Resource
	attack   *ent.Attack
	agent    *ent.Agent
}

// seedCampaign builds the fixture. uncracked seeds the hash list's
// uncracked count; the attack starts running with its keyspace fully
// dispatched, so a finished task triggers the exhaustion cascade unless
// the test rewinds dispatched_keyspace first.
func seedCampaign(t *testing.T, client *ent.Client, uncracked int64) *fixture {
	t.Helper()
	ctx := context.Background()

	project := client.Project.Create().
		SetName("cracking-lab-" + uuid.NewString()).
		SaveX(ctx)

	hashList := client.HashList.Create().
		SetProjectID(project.ID).
		SetName("ntlm-dump-" + uuid.NewString()).
		SetHashTypeID(1000).
		SetItemCount(uncracked + 1).
		SetUncrackedCount(uncracked).
		SaveX(ctx)

	camp := client.Campaign.Create().
		SetProjectID(project.ID).
		SetHashListID(hashList.ID).
		SetName("quarterly-audit-" + uuid.NewString()).
		SetState(campaign.StateActive).
		SaveX(ctx)

	wordList := client.Resource.Create().
		SetName("rockyou-" + uuid.NewString()).
		SetFileName("rockyou.txt").
		SetFileHandle(uuid.NewString()).
		SetResourceType(resource.ResourceTypeWordList).
		SetLineCount(100000).
		SetByteSize(1 << 20).
		AddProjects(project).
		SaveX(ctx)

	atk := client.Attack.Create().
		SetCampaignID(camp.ID).
		SetAttackMode(attack.AttackModeDictionary).
		SetWordListID(wordList.ID).
		SetState(attack.StateRunning).
		SetTotalKeyspace(100000).
		SetDispatchedKeyspace(100000).
		SetStartTime(time.Now()).
		SaveX(ctx)

	ag := client.Agent.Create().
		SetHostName("rig-" + uuid.NewString()).
		SetClientSignature("hashcat-bench/6.2.6").
		SetToken("csa_0_" + uuid.NewString()).
		SetState(agent.StateActive).
		AddProjects(project).
		SaveX(ctx)

	return &fixture{
		client:   client,
		project:  project,
		hashList: hashList,
		campaign: camp,
		wordList: wordList,
		attack:   atk,
		agent:    ag,
	}
}

// seedTask creates a task on the fixture's attack. agentID zero leaves
// the task unleased.
func seedTask(t *testing.T, client *ent.Client, attackID, agentID int, st task.State, offset, limit int64) *ent.Task {
	t.Helper()
	create := client.Task.Create().
		SetAttackID(attackID).
		SetState(st).
		SetKeyspaceOffset(offset).
		SetKeyspaceLimit(limit)
	if agentID != 0 {
		create.SetAgentID(agentID)
	}
	return create.SaveX(context.Background())
}

func TestEngine_TaskComplete_ExhaustsAttackAndCampaign(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	seedTask(t, db.Client, fx.attack.ID, 0, task.StateCompleted, 0, 50000)
	last := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 50000, 100000)

	updated, err := eng.ApplyTaskEvent(ctx, last.ID, TaskEventComplete)
	require.NoError(t, err)
	assert.Equal(t, task.StateCompleted, updated.State)
	assert.Equal(t, float64(100), updated.ProgressPercentage)

	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateExhausted, atk.State)
	require.NotNil(t, atk.EndTime)

	// Single attack, exhausted: the campaign has nothing left to run.
	camp := db.Client.Campaign.GetX(ctx, fx.campaign.ID)
	assert.Equal(t, campaign.StateCompleted, camp.State)
}

func TestEngine_TaskComplete_PartialDispatchKeepsAttackRunning(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	db.Client.Attack.UpdateOneID(fx.attack.ID).SetDispatchedKeyspace(50000).ExecX(ctx)
	tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 50000)

	_, err := eng.ApplyTaskEvent(ctx, tsk.ID, TaskEventComplete)
	require.NoError(t, err)

	// Half the keyspace is still undispatched; the matcher keeps going.
	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateRunning, atk.State)
	camp := db.Client.Campaign.GetX(ctx, fx.campaign.ID)
	assert.Equal(t, campaign.StateActive, camp.State)
}

func TestEngine_TaskComplete_WaitsForLiveSiblings(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	first := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 50000)
	seedTask(t, db.Client, fx.attack.ID, 0, task.StatePending, 50000, 100000)

	_, err := eng.ApplyTaskEvent(ctx, first.ID, TaskEventComplete)
	require.NoError(t, err)

	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateRunning, atk.State)
}

func TestEngine_AcceptCrack_FullCrackCompletesEverything(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	// uncracked already decremented to zero by crack ingest
	fx := seedCampaign(t, db.Client, 0)
	tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 100000)
	sibling := db.Client.Attack.Create().
		SetCampaignID(fx.campaign.ID).
		SetAttackMode(attack.AttackModeMask).
		SetMask("?a?a?a?a?a?a").
		SetPosition(1).
		SaveX(ctx)

	updated, err := eng.ApplyTaskEvent(ctx, tsk.ID, TaskEventAcceptCrack)
	require.NoError(t, err)
	assert.Equal(t, task.StateCompleted, updated.State)
	assert.Equal(t, float64(100), updated.ProgressPercentage)

	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateCompleted, atk.State)
	require.NotNil(t, atk.EndTime)

	// Nothing left to crack: the pending sibling completes without running.
	sib := db.Client.Attack.GetX(ctx, sibling.ID)
	assert.Equal(t, attack.StateCompleted, sib.State)

	camp := db.Client.Campaign.GetX(ctx, fx.campaign.ID)
	assert.Equal(t, campaign.StateCompleted, camp.State)
}

func TestEngine_AcceptCrack_PartialCrackKeepsTaskRunning(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 3)
	tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 100000)

	updated, err := eng.ApplyTaskEvent(ctx, tsk.ID, TaskEventAcceptCrack)
	require.NoError(t, err)
	assert.Equal(t, task.StateRunning, updated.State)

	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateRunning, atk.State)
}

func TestEngine_AcceptStatus_PromotesPendingTask(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StatePending, 0, 100000)
	before := tsk.ActivityTimestamp

	updated, err := eng.ApplyTaskEvent(ctx, tsk.ID, TaskEventAcceptStatus)
	require.NoError(t, err)
	assert.Equal(t, task.StateRunning, updated.State)
	assert.True(t, updated.ActivityTimestamp.After(before) || updated.ActivityTimestamp.Equal(before))
}

func TestEngine_GuardRejections(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	done := seedTask(t, db.Client, fx.attack.ID, 0, task.StateCompleted, 0, 100000)

	t.Run("terminal task rejects run", func(t *testing.T) {
		_, err := eng.ApplyTaskEvent(ctx, done.ID, TaskEventRun)
		require.ErrorIs(t, err, ErrGuardRejected)
	})

	t.Run("pending attack rejects exhaust", func(t *testing.T) {
		pending := db.Client.Attack.Create().
			SetCampaignID(fx.campaign.ID).
			SetAttackMode(attack.AttackModeDictionary).
			SetWordListID(fx.wordList.ID).
			SetPosition(1).
			SaveX(ctx)
		_, err := eng.ApplyAttackEvent(ctx, pending.ID, AttackEventExhaust)
		require.ErrorIs(t, err, ErrGuardRejected)
	})

	t.Run("unknown task is not found", func(t *testing.T) {
		_, err := eng.ApplyTaskEvent(ctx, 999999, TaskEventComplete)
		require.Error(t, err)
		assert.True(t, ent.IsNotFound(err))
	})
}

func TestEngine_TaskAbandon_DetachesAgent(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 100000)
	db.Client.Task.UpdateOneID(tsk.ID).
		SetProgressPercentage(42.5).
		SetEstimatedFinish(time.Now().Add(time.Hour)).
		ExecX(ctx)

	updated, err := eng.ApplyTaskEvent(ctx, tsk.ID, TaskEventAbandon)
	require.NoError(t, err)
	assert.Equal(t, task.StatePending, updated.State)
	assert.Nil(t, updated.AgentID)
	assert.Equal(t, float64(0), updated.ProgressPercentage)
	assert.Nil(t, updated.EstimatedFinish)
	assert.Equal(t, task.AgentSignalNone, updated.AgentSignal)

	// The slice goes back to the pool; the attack keeps running.
	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateRunning, atk.State)
}

func TestEngine_TaskError_FailsAttackAndSiblingTasks(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	broken := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 50000)
	sibling := seedTask(t, db.Client, fx.attack.ID, 0, task.StatePending, 50000, 100000)

	updated, err := eng.ApplyTaskEvent(ctx, broken.ID, TaskEventError)
	require.NoError(t, err)
	assert.Equal(t, task.StateFailed, updated.State)

	sib := db.Client.Task.GetX(ctx, sibling.ID)
	assert.Equal(t, task.StateFailed, sib.State)
	assert.Equal(t, task.AgentSignalStop, sib.AgentSignal)

	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateFailed, atk.State)
	require.NotNil(t, atk.EndTime)

	// A failed attack leaves keyspace unsearched; the campaign stays
	// active for the operator to reset or archive.
	camp := db.Client.Campaign.GetX(ctx, fx.campaign.ID)
	assert.Equal(t, campaign.StateActive, camp.State)
}

func TestEngine_FailedSiblingBlocksExhaustion(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	// An earlier slice failed but the attack was reset to running by hand;
	// finishing the last live slice must not exhaust over the hole.
	seedTask(t, db.Client, fx.attack.ID, 0, task.StateFailed, 0, 50000)
	last := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 50000, 100000)

	_, err := eng.ApplyTaskEvent(ctx, last.ID, TaskEventComplete)
	require.NoError(t, err)

	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateRunning, atk.State)
}

func TestEngine_AttackPauseResume(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	leased := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 50000)
	queued := seedTask(t, db.Client, fx.attack.ID, 0, task.StatePending, 50000, 100000)

	t.Run("pause parks live tasks", func(t *testing.T) {
		atk, err := eng.ApplyAttackEvent(ctx, fx.attack.ID, AttackEventPause)
		require.NoError(t, err)
		assert.Equal(t, attack.StatePaused, atk.State)

		for _, id := range []int{leased.ID, queued.ID} {
			tsk := db.Client.Task.GetX(ctx, id)
			assert.Equal(t, task.StatePaused, tsk.State)
			assert.Equal(t, task.AgentSignalPause, tsk.AgentSignal)
		}
	})

	t.Run("resume releases tasks back to the pool", func(t *testing.T) {
		atk, err := eng.ApplyAttackEvent(ctx, fx.attack.ID, AttackEventResume)
		require.NoError(t, err)
		assert.Equal(t, attack.StatePending, atk.State)

		for _, id := range []int{leased.ID, queued.ID} {
			tsk := db.Client.Task.GetX(ctx, id)
			assert.Equal(t, task.StatePending, tsk.State)
			assert.Equal(t, task.AgentSignalNone, tsk.AgentSignal)
			assert.True(t, tsk.Stale)
			assert.Nil(t, tsk.AgentID)
		}
	})
}

func TestEngine_AttackReset_DestroysTasks(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	seedTask(t, db.Client, fx.attack.ID, 0, task.StateFailed, 0, 50000)
	seedTask(t, db.Client, fx.attack.ID, 0, task.StateFailed, 50000, 100000)
	db.Client.Attack.UpdateOneID(fx.attack.ID).
		SetState(attack.StateFailed).
		SetEndTime(time.Now()).
		ExecX(ctx)

	atk, err := eng.ApplyAttackEvent(ctx, fx.attack.ID, AttackEventReset)
	require.NoError(t, err)
	assert.Equal(t, attack.StatePending, atk.State)
	assert.Nil(t, atk.TotalKeyspace)
	assert.Equal(t, int64(0), atk.DispatchedKeyspace)
	assert.Nil(t, atk.StartTime)
	assert.Nil(t, atk.EndTime)

	count := db.Client.Task.Query().Where(task.AttackIDEQ(fx.attack.ID)).CountX(ctx)
	assert.Zero(t, count)
}

func TestEngine_StatusRetentionPurge(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 100000)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 14; i++ {
		db.Client.HashcatStatus.Create().
			SetTaskID(tsk.ID).
			SetStatusCode(3).
			SetProgressDone(int64(i) * 1000).
			SetProgressTotal(100000).
			SetReceivedAt(base.Add(time.Duration(i) * time.Minute)).
			SaveX(ctx)
	}

	_, err := eng.ApplyTaskEvent(ctx, tsk.ID, TaskEventComplete)
	require.NoError(t, err)

	kept := db.Client.HashcatStatus.Query().
		Where(hashcatstatus.TaskIDEQ(tsk.ID)).
		Order(ent.Asc(hashcatstatus.FieldReceivedAt)).
		AllX(ctx)
	require.Len(t, kept, 10)
	// The four oldest frames are gone.
	assert.Equal(t, int64(4000), kept[0].ProgressDone)
}

func TestEngine_ExhaustToCompleted(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{ExhaustToCompleted: true})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 100000)

	updated, err := eng.ApplyTaskEvent(ctx, tsk.ID, TaskEventExhaust)
	require.NoError(t, err)
	assert.Equal(t, task.StateCompleted, updated.State)

	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateCompleted, atk.State)
}

func TestEngine_PublishesLifecycleEvents(t *testing.T) {
	db := testdb.NewTestClient(t)
	pub := &recordingPublisher{}
	eng := NewEngine(db.Client, pub, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 100000)

	_, err := eng.ApplyTaskEvent(ctx, tsk.ID, TaskEventComplete)
	require.NoError(t, err)

	// One broadcast per level: task completed, attack exhausted,
	// campaign completed.
	require.Len(t, pub.tasks, 1)
	assert.Equal(t, tsk.ID, pub.tasks[0].TaskID)
	assert.Equal(t, task.StateCompleted, pub.tasks[0].State)
	assert.Equal(t, fx.agent.ID, pub.tasks[0].AgentID)

	require.Len(t, pub.attacks, 1)
	assert.Equal(t, attack.StateExhausted, pub.attacks[0].State)

	require.Len(t, pub.campaigns, 1)
	assert.Equal(t, campaign.StateCompleted, pub.campaigns[0].State)
}

func TestEngine_NoPublishWithoutStateChange(t *testing.T) {
	db := testdb.NewTestClient(t)
	pub := &recordingPublisher{}
	eng := NewEngine(db.Client, pub, Options{})
	ctx := context.Background()

	fx := seedCampaign(t, db.Client, 5)
	db.Client.Attack.UpdateOneID(fx.attack.ID).SetDispatchedKeyspace(50000).ExecX(ctx)
	tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 50000)

	// A status frame on an already-running task is a heartbeat, not a
	// transition.
	_, err := eng.ApplyTaskEvent(ctx, tsk.ID, TaskEventAcceptStatus)
	require.NoError(t, err)
	assert.Empty(t, pub.tasks)
	assert.Empty(t, pub.attacks)
	assert.Empty(t, pub.campaigns)
}

func TestEngine_CampaignLifecycle(t *testing.T) {
	db := testdb.NewTestClient(t)
	eng := NewEngine(db.Client, nil, Options{})
	ctx := context.Background()

	t.Run("start activates a draft once", func(t *testing.T) {
		fx := seedCampaign(t, db.Client, 5)
		db.Client.Campaign.UpdateOneID(fx.campaign.ID).SetState(campaign.StateDraft).ExecX(ctx)

		camp, err := eng.StartCampaign(ctx, fx.campaign.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StateActive, camp.State)

		_, err = eng.StartCampaign(ctx, fx.campaign.ID)
		require.ErrorIs(t, err, ErrGuardRejected)
	})

	t.Run("pause and resume fan out to attacks", func(t *testing.T) {
		fx := seedCampaign(t, db.Client, 5)
		tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 100000)

		require.NoError(t, eng.PauseCampaign(ctx, fx.campaign.ID))
		assert.Equal(t, attack.StatePaused, db.Client.Attack.GetX(ctx, fx.attack.ID).State)
		assert.Equal(t, task.StatePaused, db.Client.Task.GetX(ctx, tsk.ID).State)

		require.NoError(t, eng.ResumeCampaign(ctx, fx.campaign.ID))
		assert.Equal(t, attack.StatePending, db.Client.Attack.GetX(ctx, fx.attack.ID).State)
		resumed := db.Client.Task.GetX(ctx, tsk.ID)
		assert.Equal(t, task.StatePending, resumed.State)
		assert.True(t, resumed.Stale)
	})

	t.Run("stop cancels live attacks and leaves the campaign active", func(t *testing.T) {
		fx := seedCampaign(t, db.Client, 5)
		tsk := seedTask(t, db.Client, fx.attack.ID, fx.agent.ID, task.StateRunning, 0, 100000)

		camp, err := eng.StopCampaign(ctx, fx.campaign.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StateActive, camp.State)

		assert.Equal(t, attack.StateFailed, db.Client.Attack.GetX(ctx, fx.attack.ID).State)
		stopped := db.Client.Task.GetX(ctx, tsk.ID)
		assert.Equal(t, task.StateFailed, stopped.State)
		assert.Equal(t, task.AgentSignalStop, stopped.AgentSignal)
	})

	t.Run("stop completes a fully exhausted campaign", func(t *testing.T) {
		fx := seedCampaign(t, db.Client, 5)
		db.Client.Attack.UpdateOneID(fx.attack.ID).
			SetState(attack.StateExhausted).
			SetEndTime(time.Now()).
			ExecX(ctx)

		camp, err := eng.StopCampaign(ctx, fx.campaign.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StateCompleted, camp.State)
	})

	t.Run("archive is one-way", func(t *testing.T) {
		fx := seedCampaign(t, db.Client, 5)

		camp, err := eng.ArchiveCampaign(ctx, fx.campaign.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StateArchived, camp.State)

		_, err = eng.ArchiveCampaign(ctx, fx.campaign.ID)
		require.ErrorIs(t, err, ErrGuardRejected)

		_, err = eng.StartCampaign(ctx, fx.campaign.ID)
		require.ErrorIs(t, err, ErrGuardRejected)
	})
}

// recordingPublisher captures broadcasts for assertions.
type recordingPublisher struct {
	mu        sync.Mutex
	tasks     []events.TaskStatusPayload
	attacks   []events.AttackStatusPayload
	campaigns []events.CampaignStatusPayload
}

func (p *recordingPublisher) PublishTaskStatus(_ context.Context, payload events.TaskStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tasks = append(p.tasks, payload)
	return nil
}

func (p *recordingPublisher) PublishAttackStatus(_ context.Context, payload events.AttackStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attacks = append(p.attacks, payload)
	return nil
}

func (p *recordingPublisher) PublishCampaignStatus(_ context.Context, payload events.CampaignStatusPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.campaigns = append(p.campaigns, payload)
	return nil
}
