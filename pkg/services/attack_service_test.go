package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/task"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

func TestAttackService_CreateAttack(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAttackService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 100, 100)
	camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
	wordList := seedWordList(t, db.Client, project.ID, 100000)

	first, err := svc.CreateAttack(ctx, camp.ID, AttackParams{
		Name:       "rockyou straight",
		AttackMode: attack.AttackModeDictionary,
		WordListID: &wordList.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, attack.StatePending, first.State)
	assert.Equal(t, 0, first.Position)
	assert.Nil(t, first.TotalKeyspace)
	assert.Equal(t, 3, first.WorkloadProfile)

	second, err := svc.CreateAttack(ctx, camp.ID, AttackParams{
		AttackMode: attack.AttackModeMask,
		Mask:       "?u?l?l?l?d?d?d?d",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	t.Run("rejects unknown campaign", func(t *testing.T) {
		_, err := svc.CreateAttack(ctx, 999999, AttackParams{
			AttackMode: attack.AttackModeDictionary,
			WordListID: &wordList.ID,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects archived campaign", func(t *testing.T) {
		archived := db.Client.Campaign.Create().
			SetProjectID(project.ID).
			SetHashListID(hashList.ID).
			SetName("closed-out").
			SetState(campaign.StateArchived).
			SaveX(ctx)
		_, err := svc.CreateAttack(ctx, archived.ID, AttackParams{
			AttackMode: attack.AttackModeDictionary,
			WordListID: &wordList.ID,
		})
		assert.ErrorIs(t, err, ErrGuardRejected)
	})
}

func TestAttackService_CreateAttackValidation(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAttackService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 100, 100)
	camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
	wordList := seedWordList(t, db.Client, project.ID, 100000)
	maskList := seedMaskList(t, db.Client, project.ID, 500)

	cases := []struct {
		name   string
		params AttackParams
	}{
		{"dictionary without word list", AttackParams{
			AttackMode: attack.AttackModeDictionary,
		}},
		{"dictionary with mask", AttackParams{
			AttackMode: attack.AttackModeDictionary,
			WordListID: &wordList.ID,
			Mask:       "?d?d?d?d",
		}},
		{"mask without source", AttackParams{
			AttackMode: attack.AttackModeMask,
		}},
		{"mask with word list", AttackParams{
			AttackMode: attack.AttackModeMask,
			Mask:       "?d?d?d?d",
			WordListID: &wordList.ID,
		}},
		{"hybrid without mask", AttackParams{
			AttackMode: attack.AttackModeHybridDictionary,
			WordListID: &wordList.ID,
		}},
		{"hybrid with mask list", AttackParams{
			AttackMode: attack.AttackModeHybridMask,
			WordListID: &wordList.ID,
			Mask:       "?d?d",
			MaskListID: &maskList.ID,
		}},
		{"increment on mask list", AttackParams{
			AttackMode:    attack.AttackModeMask,
			MaskListID:    &maskList.ID,
			IncrementMode: true,
		}},
		{"dangling mask marker", AttackParams{
			AttackMode: attack.AttackModeMask,
			Mask:       "?d?d?",
		}},
		{"unset custom charset", AttackParams{
			AttackMode: attack.AttackModeMask,
			Mask:       "?1?1?1",
		}},
		{"workload profile out of range", AttackParams{
			AttackMode:      attack.AttackModeDictionary,
			WordListID:      &wordList.ID,
			WorkloadProfile: 5,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateAttack(ctx, camp.ID, tc.params)
			assert.True(t, IsValidationError(err), "got %v", err)
		})
	}

	t.Run("wrong resource type", func(t *testing.T) {
		_, err := svc.CreateAttack(ctx, camp.ID, AttackParams{
			AttackMode: attack.AttackModeDictionary,
			WordListID: &maskList.ID,
		})
		assert.True(t, IsValidationError(err), "got %v", err)
	})

	t.Run("custom charset resolves", func(t *testing.T) {
		atk, err := svc.CreateAttack(ctx, camp.ID, AttackParams{
			AttackMode:     attack.AttackModeMask,
			Mask:           "?1?1?d",
			CustomCharset1: "?l?u",
		})
		require.NoError(t, err)
		assert.Equal(t, "?l?u", atk.CustomCharset1)
	})
}

func TestAttackService_UpdateAttack(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAttackService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 100, 100)
	camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
	wordList := seedWordList(t, db.Client, project.ID, 100000)

	atk, err := svc.CreateAttack(ctx, camp.ID, AttackParams{
		AttackMode: attack.AttackModeDictionary,
		WordListID: &wordList.ID,
	})
	require.NoError(t, err)

	// Simulate a planned, partially dispatched attack with a task.
	db.Client.Attack.UpdateOneID(atk.ID).
		SetTotalKeyspace(100000).
		SetDispatchedKeyspace(50000).
		ExecX(ctx)
	seedLeasedTask(t, db.Client, atk.ID, 0, task.StatePending, 0, 50000)

	updated, err := svc.UpdateAttack(ctx, atk.ID, AttackParams{
		AttackMode: attack.AttackModeMask,
		Mask:       "?u?l?l?l?l?d?d",
	})
	require.NoError(t, err)
	assert.Equal(t, attack.AttackModeMask, updated.AttackMode)
	assert.Nil(t, updated.TotalKeyspace)
	assert.Equal(t, int64(0), updated.DispatchedKeyspace)
	assert.Nil(t, updated.WordListID)

	// The stale geometry's tasks are gone.
	n := db.Client.Task.Query().Where(task.AttackIDEQ(atk.ID)).CountX(ctx)
	assert.Equal(t, 0, n)

	t.Run("running attacks are immutable", func(t *testing.T) {
		running := seedRunningAttack(t, db.Client, camp.ID, wordList.ID, 100000)
		_, err := svc.UpdateAttack(ctx, running.ID, AttackParams{
			AttackMode: attack.AttackModeDictionary,
			WordListID: &wordList.ID,
		})
		assert.ErrorIs(t, err, ErrGuardRejected)
	})
}

func TestAttackService_DeleteAttack(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAttackService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 100, 100)
	camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
	wordList := seedWordList(t, db.Client, project.ID, 100000)

	running := seedRunningAttack(t, db.Client, camp.ID, wordList.ID, 100000)
	err := svc.DeleteAttack(ctx, running.ID)
	assert.ErrorIs(t, err, ErrGuardRejected)

	// An exhausted sibling plus deleting the only live attack leaves the
	// campaign with terminal attacks only; the derivation completes it.
	db.Client.Attack.UpdateOneID(running.ID).
		SetState(attack.StateExhausted).
		ExecX(ctx)
	doomed, err := svc.CreateAttack(ctx, camp.ID, AttackParams{
		AttackMode: attack.AttackModeDictionary,
		WordListID: &wordList.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttack(ctx, doomed.ID))
	_, err = svc.GetAttack(ctx, doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	refreshed := db.Client.Campaign.GetX(ctx, camp.ID)
	assert.Equal(t, campaign.StateCompleted, refreshed.State)
}

func TestAttackService_MoveAttack(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAttackService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 100, 100)
	camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
	wordList := seedWordList(t, db.Client, project.ID, 100000)

	var ids []int
	for range 3 {
		atk, err := svc.CreateAttack(ctx, camp.ID, AttackParams{
			AttackMode: attack.AttackModeDictionary,
			WordListID: &wordList.ID,
		})
		require.NoError(t, err)
		ids = append(ids, atk.ID)
	}

	moved, err := svc.MoveAttack(ctx, ids[2], "up")
	require.NoError(t, err)
	assert.Equal(t, 1, moved.Position)
	assert.Equal(t, 2, db.Client.Attack.GetX(ctx, ids[1]).Position)

	// Moving the head up is a no-op.
	head, err := svc.MoveAttack(ctx, ids[0], "up")
	require.NoError(t, err)
	assert.Equal(t, 0, head.Position)

	moved, err = svc.MoveAttack(ctx, ids[2], "down")
	require.NoError(t, err)
	assert.Equal(t, 2, moved.Position)

	_, err = svc.MoveAttack(ctx, ids[0], "sideways")
	assert.True(t, IsValidationError(err))
}

func TestAttackService_GetAttackBundle(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewAttackService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 100, 100)
	camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
	wordList := seedWordList(t, db.Client, project.ID, 100000)

	atk, err := svc.CreateAttack(ctx, camp.ID, AttackParams{
		AttackMode: attack.AttackModeDictionary,
		WordListID: &wordList.ID,
	})
	require.NoError(t, err)

	bundle, err := svc.GetAttackBundle(ctx, atk.ID)
	require.NoError(t, err)
	assert.Equal(t, atk.ID, bundle.Attack.ID)
	assert.Equal(t, camp.ID, bundle.Campaign.ID)
	assert.Equal(t, hashList.ID, bundle.HashList.ID)
	require.NotNil(t, bundle.WordList)
	assert.Equal(t, wordList.ID, bundle.WordList.ID)
	assert.Nil(t, bundle.RuleList)
	assert.Nil(t, bundle.MaskList)
}
