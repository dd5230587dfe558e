package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/state"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

// pool is one project with an active campaign over a 100k-line word
// list. The dictionary attack starts pending with nothing dispatched, so
// the first eligible claim cuts the first slice.
type pool struct {
	client   *ent.Client
	project  *ent.Project
	hashList *ent.HashList
	campaign *ent.Campaign
	wordList *ent.Resource
	attack   *ent.Attack
	agent    *ent.Agent
}

func seedPool(t *testing.T, client *ent.Client, priority models.Priority) *pool {
	t.Helper()
	ctx := context.Background()

	project := client.Project.Create().
		SetName("red-team-" + uuid.NewString()).
		SaveX(ctx)

	hashList := client.HashList.Create().
		SetProjectID(project.ID).
		SetName("domain-dump-" + uuid.NewString()).
		SetHashTypeID(1000).
		SetItemCount(10).
		SetUncrackedCount(10).
		SaveX(ctx)

	camp := client.Campaign.Create().
		SetProjectID(project.ID).
		SetHashListID(hashList.ID).
		SetName("spring-audit-" + uuid.NewString()).
		SetPriority(priority).
		SetState(campaign.StateActive).
		SaveX(ctx)

	wordList := client.Resource.Create().
		SetName("common-passwords-" + uuid.NewString()).
		SetFileName("common.txt").
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
		SaveX(ctx)

	ag := client.Agent.Create().
		SetHostName("rig-" + uuid.NewString()).
		SetClientSignature("hashcat-bench/6.2.6").
		SetToken("csa_0_" + uuid.NewString()).
		SetState(agent.StateActive).
		AddProjects(project).
		SaveX(ctx)

	return &pool{
		client:   client,
		project:  project,
		hashList: hashList,
		campaign: camp,
		wordList: wordList,
		attack:   atk,
		agent:    ag,
	}
}

// seedBenchmark records a fresh speed measurement for the agent.
func seedBenchmark(t *testing.T, client *ent.Client, agentID, hashType int, speed float64) {
	t.Helper()
	client.Benchmark.Create().
		SetAgentID(agentID).
		SetHashType(hashType).
		SetDevice(0).
		SetHashSpeed(speed).
		SetRuntimeMs(500).
		SetMeasuredAt(time.Now()).
		ExecX(context.Background())
}

func newMatcher(client *ent.Client) *Matcher {
	eng := state.NewEngine(client, nil, state.Options{})
	bench := services.NewBenchmarkService(client, nil, 0)
	return NewMatcher(client, eng, bench, config.DefaultDispatchConfig())
}

func TestMatcher_CutsSliceSizedByBenchmarkSpeed(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newMatcher(db.Client)
	ctx := context.Background()

	fx := seedPool(t, db.Client, models.PriorityRoutine)
	// 500 H/s at the 60s target cuts 30000-candidate slices.
	seedBenchmark(t, db.Client, fx.agent.ID, 1000, 500)

	got, err := m.NextTask(ctx, fx.agent.ID)
	require.NoError(t, err)

	assert.Equal(t, task.StateRunning, got.State)
	require.NotNil(t, got.AgentID)
	assert.Equal(t, fx.agent.ID, *got.AgentID)
	assert.Equal(t, int64(0), got.KeyspaceOffset)
	assert.Equal(t, int64(30000), got.KeyspaceLimit)

	// First claim plans the keyspace and starts the attack.
	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateRunning, atk.State)
	require.NotNil(t, atk.TotalKeyspace)
	assert.Equal(t, int64(100000), *atk.TotalKeyspace)
	assert.Equal(t, int64(30000), atk.DispatchedKeyspace)
	assert.NotNil(t, atk.StartTime)
}

func TestMatcher_FinalSliceAbsorbsRemainder(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newMatcher(db.Client)
	ctx := context.Background()

	fx := seedPool(t, db.Client, models.PriorityRoutine)
	// 30000-candidate slices against 40000 remaining: the next slice
	// takes everything because 40000 < 2 x 30000.
	seedBenchmark(t, db.Client, fx.agent.ID, 1000, 500)
	db.Client.Attack.UpdateOneID(fx.attack.ID).
		SetState(attack.StateRunning).
		SetTotalKeyspace(100000).
		SetDispatchedKeyspace(60000).
		ExecX(ctx)

	got, err := m.NextTask(ctx, fx.agent.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(60000), got.KeyspaceOffset)
	assert.Equal(t, int64(40000), got.KeyspaceLimit)

	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, int64(100000), atk.DispatchedKeyspace)
}

func TestMatcher_ReServesHeldRunningTask(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newMatcher(db.Client)
	ctx := context.Background()

	fx := seedPool(t, db.Client, models.PriorityRoutine)
	seedBenchmark(t, db.Client, fx.agent.ID, 1000, 500)

	stale := time.Now().Add(-10 * time.Minute)
	held := db.Client.Task.Create().
		SetAttackID(fx.attack.ID).
		SetAgentID(fx.agent.ID).
		SetState(task.StateRunning).
		SetKeyspaceOffset(0).
		SetKeyspaceLimit(30000).
		SetActivityTimestamp(stale).
		SaveX(ctx)

	got, err := m.NextTask(ctx, fx.agent.ID)
	require.NoError(t, err)

	// Same task back, lease renewed, nothing new created.
	assert.Equal(t, held.ID, got.ID)
	assert.True(t, got.ActivityTimestamp.After(stale))
	assert.Equal(t, 1, db.Client.Task.Query().CountX(ctx))
}

func TestMatcher_RequeuedSliceGoesOutBeforeNewKeyspace(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newMatcher(db.Client)
	ctx := context.Background()

	fx := seedPool(t, db.Client, models.PriorityRoutine)
	seedBenchmark(t, db.Client, fx.agent.ID, 1000, 500)
	db.Client.Attack.UpdateOneID(fx.attack.ID).
		SetState(attack.StateRunning).
		SetTotalKeyspace(100000).
		SetDispatchedKeyspace(60000).
		ExecX(ctx)

	// A slice abandoned by some earlier agent, offsets preserved.
	orphan := db.Client.Task.Create().
		SetAttackID(fx.attack.ID).
		SetState(task.StatePending).
		SetKeyspaceOffset(30000).
		SetKeyspaceLimit(30000).
		SaveX(ctx)

	got, err := m.NextTask(ctx, fx.agent.ID)
	require.NoError(t, err)

	assert.Equal(t, orphan.ID, got.ID)
	assert.Equal(t, int64(30000), got.KeyspaceOffset)
	assert.Equal(t, int64(30000), got.KeyspaceLimit)
	assert.Equal(t, task.StateRunning, got.State)

	// The high-water mark did not move; no fresh keyspace was cut.
	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, int64(60000), atk.DispatchedKeyspace)
	assert.Equal(t, 1, db.Client.Task.Query().CountX(ctx))
}

func TestMatcher_BenchmarkGate(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newMatcher(db.Client)
	ctx := context.Background()

	fx := seedPool(t, db.Client, models.PriorityRoutine)

	t.Run("no benchmark at all", func(t *testing.T) {
		_, err := m.NextTask(ctx, fx.agent.ID)
		require.ErrorIs(t, err, services.ErrBenchmarkRequired)
	})

	t.Run("stale benchmark", func(t *testing.T) {
		db.Client.Benchmark.Create().
			SetAgentID(fx.agent.ID).
			SetHashType(1000).
			SetDevice(0).
			SetHashSpeed(500).
			SetRuntimeMs(500).
			SetMeasuredAt(time.Now().Add(-200 * 24 * time.Hour)).
			ExecX(ctx)

		_, err := m.NextTask(ctx, fx.agent.ID)
		require.ErrorIs(t, err, services.ErrBenchmarkRequired)
	})

	t.Run("fresh benchmark unlocks the attack", func(t *testing.T) {
		db.Client.Benchmark.Create().
			SetAgentID(fx.agent.ID).
			SetHashType(1000).
			SetDevice(1).
			SetHashSpeed(500).
			SetRuntimeMs(500).
			SetMeasuredAt(time.Now()).
			ExecX(ctx)

		got, err := m.NextTask(ctx, fx.agent.ID)
		require.NoError(t, err)
		assert.Equal(t, fx.attack.ID, got.AttackID)
	})
}

func TestMatcher_NoWork(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newMatcher(db.Client)
	ctx := context.Background()

	t.Run("stopped agent", func(t *testing.T) {
		fx := seedPool(t, db.Client, models.PriorityRoutine)
		seedBenchmark(t, db.Client, fx.agent.ID, 1000, 500)
		db.Client.Agent.UpdateOneID(fx.agent.ID).SetState(agent.StateStopped).ExecX(ctx)

		_, err := m.NextTask(ctx, fx.agent.ID)
		require.ErrorIs(t, err, services.ErrNoWork)
	})

	t.Run("agent outside the campaign's project", func(t *testing.T) {
		fx := seedPool(t, db.Client, models.PriorityRoutine)
		outsider := db.Client.Agent.Create().
			SetHostName("outsider-" + uuid.NewString()).
			SetClientSignature("hashcat-bench/6.2.6").
			SetToken("csa_0_" + uuid.NewString()).
			SetState(agent.StateActive).
			SaveX(ctx)
		seedBenchmark(t, db.Client, outsider.ID, 1000, 500)
		_ = fx

		_, err := m.NextTask(ctx, outsider.ID)
		require.ErrorIs(t, err, services.ErrNoWork)
	})

	t.Run("draft campaign", func(t *testing.T) {
		fx := seedPool(t, db.Client, models.PriorityRoutine)
		seedBenchmark(t, db.Client, fx.agent.ID, 1000, 500)
		db.Client.Campaign.UpdateOneID(fx.campaign.ID).SetState(campaign.StateDraft).ExecX(ctx)

		_, err := m.NextTask(ctx, fx.agent.ID)
		require.ErrorIs(t, err, services.ErrNoWork)
	})

	t.Run("keyspace fully dispatched", func(t *testing.T) {
		fx := seedPool(t, db.Client, models.PriorityRoutine)
		seedBenchmark(t, db.Client, fx.agent.ID, 1000, 500)
		db.Client.Attack.UpdateOneID(fx.attack.ID).
			SetState(attack.StateRunning).
			SetTotalKeyspace(100000).
			SetDispatchedKeyspace(100000).
			ExecX(ctx)

		_, err := m.NextTask(ctx, fx.agent.ID)
		require.ErrorIs(t, err, services.ErrNoWork)
	})

	t.Run("uncounted word list skips the attack without a benchmark demand", func(t *testing.T) {
		fx := seedPool(t, db.Client, models.PriorityRoutine)
		db.Client.Resource.UpdateOneID(fx.wordList.ID).ClearLineCount().ExecX(ctx)

		// No benchmark seeded on purpose: an undispatchable attack must
		// not be the reason an agent is sent off to benchmark.
		_, err := m.NextTask(ctx, fx.agent.ID)
		require.ErrorIs(t, err, services.ErrNoWork)
	})
}

func TestMatcher_FlashCampaignOutranksRoutine(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newMatcher(db.Client)
	ctx := context.Background()

	routine := seedPool(t, db.Client, models.PriorityRoutine)
	flash := seedPool(t, db.Client, models.PriorityFlash)

	// One agent sees both projects and is benchmarked for both lists.
	db.Client.Agent.UpdateOneID(routine.agent.ID).
		AddProjects(flash.project).
		ExecX(ctx)
	seedBenchmark(t, db.Client, routine.agent.ID, 1000, 500)

	got, err := m.NextTask(ctx, routine.agent.ID)
	require.NoError(t, err)
	assert.Equal(t, flash.attack.ID, got.AttackID)
}

func TestMatcher_AttacksDispatchInPositionOrder(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newMatcher(db.Client)
	ctx := context.Background()

	fx := seedPool(t, db.Client, models.PriorityRoutine)
	seedBenchmark(t, db.Client, fx.agent.ID, 1000, 500)

	db.Client.Attack.UpdateOneID(fx.attack.ID).SetPosition(1).ExecX(ctx)
	first := db.Client.Attack.Create().
		SetCampaignID(fx.campaign.ID).
		SetAttackMode(attack.AttackModeMask).
		SetMask("?d?d?d?d?d?d").
		SetPosition(0).
		SaveX(ctx)

	got, err := m.NextTask(ctx, fx.agent.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.AttackID)
}

func TestMatcher_SecondAgentGetsTheNextSlice(t *testing.T) {
	db := testdb.NewTestClient(t)
	m := newMatcher(db.Client)
	ctx := context.Background()

	fx := seedPool(t, db.Client, models.PriorityRoutine)
	seedBenchmark(t, db.Client, fx.agent.ID, 1000, 500)

	second := db.Client.Agent.Create().
		SetHostName("rig-" + uuid.NewString()).
		SetClientSignature("hashcat-bench/6.2.6").
		SetToken("csa_0_" + uuid.NewString()).
		SetState(agent.StateActive).
		AddProjects(fx.project).
		SaveX(ctx)
	seedBenchmark(t, db.Client, second.ID, 1000, 500)

	one, err := m.NextTask(ctx, fx.agent.ID)
	require.NoError(t, err)
	two, err := m.NextTask(ctx, second.ID)
	require.NoError(t, err)

	assert.NotEqual(t, one.ID, two.ID)
	assert.Equal(t, int64(0), one.KeyspaceOffset)
	assert.Equal(t, int64(30000), two.KeyspaceOffset)

	atk := db.Client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, int64(60000), atk.DispatchedKeyspace)
}

func TestSweeper_ReclaimsExpiredLeases(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	eng := state.NewEngine(db.Client, nil, state.Options{})
	cfg := config.DefaultDispatchConfig()
	sw := NewSweeper(db.Client, eng, cfg)

	fx := seedPool(t, db.Client, models.PriorityRoutine)
	db.Client.Attack.UpdateOneID(fx.attack.ID).
		SetState(attack.StateRunning).
		SetTotalKeyspace(100000).
		SetDispatchedKeyspace(60000).
		ExecX(ctx)

	expired := db.Client.Task.Create().
		SetAttackID(fx.attack.ID).
		SetAgentID(fx.agent.ID).
		SetState(task.StateRunning).
		SetKeyspaceOffset(0).
		SetKeyspaceLimit(30000).
		SetActivityTimestamp(time.Now().Add(-31 * time.Minute)).
		SaveX(ctx)

	second := db.Client.Agent.Create().
		SetHostName("rig-" + uuid.NewString()).
		SetClientSignature("hashcat-bench/6.2.6").
		SetToken("csa_0_" + uuid.NewString()).
		SetState(agent.StateActive).
		AddProjects(fx.project).
		SaveX(ctx)
	healthy := db.Client.Task.Create().
		SetAttackID(fx.attack.ID).
		SetAgentID(second.ID).
		SetState(task.StateRunning).
		SetKeyspaceOffset(30000).
		SetKeyspaceLimit(30000).
		SetActivityTimestamp(time.Now().Add(-29 * time.Minute)).
		SaveX(ctx)

	n, err := sw.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The expired slice went back to the pool with offsets intact.
	got := db.Client.Task.GetX(ctx, expired.ID)
	assert.Equal(t, task.StatePending, got.State)
	assert.Nil(t, got.AgentID)
	assert.Equal(t, int64(0), got.KeyspaceOffset)
	assert.Equal(t, int64(30000), got.KeyspaceLimit)

	kept := db.Client.Task.GetX(ctx, healthy.ID)
	assert.Equal(t, task.StateRunning, kept.State)
	require.NotNil(t, kept.AgentID)

	// Nothing left to reclaim on a second pass.
	n, err = sw.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSweeper_StartRunsImmediatePass(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	eng := state.NewEngine(db.Client, nil, state.Options{})
	cfg := config.DefaultDispatchConfig()
	// Long interval: only the startup pass can reclaim within the test.
	cfg.SweepInterval = time.Hour
	cfg.SweepJitter = 0
	sw := NewSweeper(db.Client, eng, cfg)

	fx := seedPool(t, db.Client, models.PriorityRoutine)
	db.Client.Attack.UpdateOneID(fx.attack.ID).
		SetState(attack.StateRunning).
		SetTotalKeyspace(100000).
		SetDispatchedKeyspace(30000).
		ExecX(ctx)
	expired := db.Client.Task.Create().
		SetAttackID(fx.attack.ID).
		SetAgentID(fx.agent.ID).
		SetState(task.StateRunning).
		SetKeyspaceOffset(0).
		SetKeyspaceLimit(30000).
		SetActivityTimestamp(time.Now().Add(-31 * time.Minute)).
		SaveX(ctx)

	sw.Start(ctx)
	defer sw.Stop()

	require.Eventually(t, func() bool {
		got, err := db.Client.Task.Get(ctx, expired.ID)
		return err == nil && got.State == task.StatePending
	}, 5*time.Second, 50*time.Millisecond)
}
