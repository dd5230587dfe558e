package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/database"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

// Well-known NTLM digests so the fixtures read like a real engagement.
const (
	ntlmPassword  = "8846f7eaee8fb117ad06bdd830b7586c" // "password"
	ntlm123456    = "32ed87bdb5fdc5e9cba88547376818d4" // "123456"
	ntlmPassword1 = "5835048ce94ad0564e29a924a03510ef" // "password1"
)

type crackFixture struct {
	client   *ent.Client
	svc      *CrackService
	hashList *ent.HashList
	campaign *ent.Campaign
	attack   *ent.Attack
	agent    *ent.Agent
	task     *ent.Task
}

// newCrackFixture builds a campaign mid-crack: the given hashes loaded,
// one running attack fully dispatched into a single task leased by one
// agent.
func newCrackFixture(t *testing.T, db *database.Client, hashes ...string) *crackFixture {
	t.Helper()
	client := db.Client
	ctx := context.Background()

	project := seedProject(t, client)

	items := make([]HashItemInput, 0, len(hashes))
	for _, h := range hashes {
		items = append(items, HashItemInput{Hash: h})
	}
	hl, err := NewHashListService(client).CreateHashList(ctx, CreateHashListRequest{
		ProjectID:  project.ID,
		Name:       "domain-ntds",
		HashTypeID: 1000,
		Items:      items,
	})
	require.NoError(t, err)

	camp := seedActiveCampaign(t, client, project.ID, hl.ID)
	words := seedWordList(t, client, project.ID, 14344384)
	atk := seedRunningAttack(t, client, camp.ID, words.ID, 14344384)
	agent := seedActiveAgent(t, client, project.ID)
	tsk := seedLeasedTask(t, client, atk.ID, agent.ID, task.StateRunning, 0, 14344384)

	return &crackFixture{
		client:   client,
		svc:      NewCrackService(client, newEngine(client), nil),
		hashList: hl,
		campaign: camp,
		attack:   atk,
		agent:    agent,
		task:     tsk,
	}
}

func TestCrackService_SubmitCracks(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newCrackFixture(t, db, ntlmPassword, ntlm123456, ntlmPassword1)
	ctx := context.Background()

	batch := []models.CrackSubmission{
		{Hash: ntlmPassword, PlainText: "password", Timestamp: time.Now()},
		{Hash: ntlm123456, PlainText: "123456", Timestamp: time.Now()},
	}

	res, err := fx.svc.SubmitCracks(ctx, fx.agent.ID, fx.task.ID, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Fresh)
	assert.Equal(t, 0, res.Duplicate)
	assert.Equal(t, 0, res.Discarded)
	assert.Equal(t, task.StateRunning, res.TaskState)

	hl := fx.client.HashList.GetX(ctx, fx.hashList.ID)
	assert.Equal(t, int64(1), hl.UncrackedCount)
	assert.Equal(t, int64(3), hl.ItemCount)

	item, err := fx.client.HashItem.Query().
		Where(hashitem.HashListIDEQ(hl.ID), hashitem.HashValueEQ(ntlmPassword)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, item.Plaintext)
	assert.Equal(t, "password", *item.Plaintext)
	assert.NotNil(t, item.CrackedAt)

	cracks, err := fx.svc.ListCracks(ctx, fx.task.ID)
	require.NoError(t, err)
	assert.Len(t, cracks, 2)

	t.Run("resubmission is idempotent", func(t *testing.T) {
		res, err := fx.svc.SubmitCracks(ctx, fx.agent.ID, fx.task.ID, batch)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Fresh)
		assert.Equal(t, 2, res.Duplicate)

		hl := fx.client.HashList.GetX(ctx, fx.hashList.ID)
		assert.Equal(t, int64(1), hl.UncrackedCount, "duplicates must not decrement again")

		cracks, err := fx.svc.ListCracks(ctx, fx.task.ID)
		require.NoError(t, err)
		assert.Len(t, cracks, 2, "resubmitted pairs collapse into existing rows")
	})
}

func TestCrackService_SubmitCracksValidation(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newCrackFixture(t, db, ntlmPassword)
	ctx := context.Background()

	t.Run("requires at least one crack", func(t *testing.T) {
		_, err := fx.svc.SubmitCracks(ctx, fx.agent.ID, fx.task.ID, nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires hash on every entry", func(t *testing.T) {
		_, err := fx.svc.SubmitCracks(ctx, fx.agent.ID, fx.task.ID, []models.CrackSubmission{
			{Hash: ntlmPassword, PlainText: "password"},
			{PlainText: "orphan"},
		})
		require.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "cracks[1].hash")
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := fx.svc.SubmitCracks(ctx, fx.agent.ID, 999999, []models.CrackSubmission{
			{Hash: ntlmPassword, PlainText: "password"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCrackService_UnknownHashDiscarded(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newCrackFixture(t, db, ntlmPassword, ntlm123456)
	ctx := context.Background()

	res, err := fx.svc.SubmitCracks(ctx, fx.agent.ID, fx.task.ID, []models.CrackSubmission{
		{Hash: ntlmPassword, PlainText: "password"},
		{Hash: "ffffffffffffffffffffffffffffffff", PlainText: "not-ours"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Fresh)
	assert.Equal(t, 1, res.Discarded)

	hl := fx.client.HashList.GetX(ctx, fx.hashList.ID)
	assert.Equal(t, int64(1), hl.UncrackedCount, "only the known hash counts")

	cracks, err := fx.svc.ListCracks(ctx, fx.task.ID)
	require.NoError(t, err)
	assert.Len(t, cracks, 1, "discarded hashes leave no result row")
}

func TestCrackService_FinalCrackCompletesCascade(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newCrackFixture(t, db, ntlmPassword)
	ctx := context.Background()

	res, err := fx.svc.SubmitCracks(ctx, fx.agent.ID, fx.task.ID, []models.CrackSubmission{
		{Hash: ntlmPassword, PlainText: "password"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Fresh)
	assert.Equal(t, task.StateCompleted, res.TaskState)

	tsk := fx.client.Task.GetX(ctx, fx.task.ID)
	assert.Equal(t, task.StateCompleted, tsk.State)
	assert.Equal(t, float64(100), tsk.ProgressPercentage)

	atk := fx.client.Attack.GetX(ctx, fx.attack.ID)
	assert.Equal(t, attack.StateCompleted, atk.State)
	assert.NotNil(t, atk.EndTime)

	camp := fx.client.Campaign.GetX(ctx, fx.campaign.ID)
	assert.Equal(t, campaign.StateCompleted, camp.State)

	hl := fx.client.HashList.GetX(ctx, fx.hashList.ID)
	assert.Equal(t, int64(0), hl.UncrackedCount)
}

func TestCrackService_NonHolderRollsBack(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newCrackFixture(t, db, ntlmPassword, ntlm123456)
	ctx := context.Background()

	intruder := seedActiveAgent(t, fx.client)

	_, err := fx.svc.SubmitCracks(ctx, intruder.ID, fx.task.ID, []models.CrackSubmission{
		{Hash: ntlmPassword, PlainText: "password"},
	})
	require.ErrorIs(t, err, ErrLeaseNotHeld)

	// The whole batch must vanish with the rollback.
	hl := fx.client.HashList.GetX(ctx, fx.hashList.ID)
	assert.Equal(t, int64(2), hl.UncrackedCount)

	item, err := fx.client.HashItem.Query().
		Where(hashitem.HashListIDEQ(hl.ID), hashitem.HashValueEQ(ntlmPassword)).
		Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, item.Plaintext)

	cracks, err := fx.svc.ListCracks(ctx, fx.task.ID)
	require.NoError(t, err)
	assert.Empty(t, cracks)
}

func TestCrackService_SaltedVariantsSettleTogether(t *testing.T) {
	db := testdb.NewTestClient(t)
	client := db.Client
	ctx := context.Background()

	// Two items share a hash value and differ only in salt. The wire
	// contract carries no salt, so one submission must settle both.
	project := seedProject(t, client)
	hl, err := NewHashListService(client).CreateHashList(ctx, CreateHashListRequest{
		ProjectID:  project.ID,
		Name:       "salted-shadow",
		HashTypeID: 1800,
		Items: []HashItemInput{
			{Hash: ntlmPassword, Salt: "c3Vuc2hpbmU"},
			{Hash: ntlmPassword, Salt: "bW9vbmxpZ2h0"},
			{Hash: ntlm123456},
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), hl.UncrackedCount)

	camp := seedActiveCampaign(t, client, project.ID, hl.ID)
	words := seedWordList(t, client, project.ID, 14344384)
	atk := seedRunningAttack(t, client, camp.ID, words.ID, 14344384)
	agent := seedActiveAgent(t, client, project.ID)
	tsk := seedLeasedTask(t, client, atk.ID, agent.ID, task.StateRunning, 0, 14344384)
	svc := NewCrackService(client, newEngine(client), nil)

	res, err := svc.SubmitCracks(ctx, agent.ID, tsk.ID, []models.CrackSubmission{
		{Hash: ntlmPassword, PlainText: "password", Timestamp: time.Now()},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Fresh)
	assert.Equal(t, 0, res.Duplicate)

	items, err := client.HashItem.Query().
		Where(hashitem.HashListIDEQ(hl.ID), hashitem.HashValueEQ(ntlmPassword)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		require.NotNil(t, item.Plaintext)
		assert.Equal(t, "password", *item.Plaintext)
	}

	reloaded := client.HashList.GetX(ctx, hl.ID)
	assert.Equal(t, int64(1), reloaded.UncrackedCount, "both salted variants decrement")

	t.Run("resubmission is a single duplicate", func(t *testing.T) {
		res, err := svc.SubmitCracks(ctx, agent.ID, tsk.ID, []models.CrackSubmission{
			{Hash: ntlmPassword, PlainText: "password", Timestamp: time.Now()},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Fresh)
		assert.Equal(t, 1, res.Duplicate)
	})
}

func TestCrackService_RejectsTerminalTask(t *testing.T) {
	db := testdb.NewTestClient(t)
	fx := newCrackFixture(t, db, ntlmPassword)
	ctx := context.Background()

	fx.client.Task.UpdateOneID(fx.task.ID).
		SetState(task.StateExhausted).
		ExecX(ctx)

	_, err := fx.svc.SubmitCracks(ctx, fx.agent.ID, fx.task.ID, []models.CrackSubmission{
		{Hash: ntlmPassword, PlainText: "password"},
	})
	assert.ErrorIs(t, err, ErrGuardRejected)
}
