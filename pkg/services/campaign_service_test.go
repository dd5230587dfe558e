package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

func TestCampaignService_CreateCampaign(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewCampaignService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 100, 100)

	c, err := svc.CreateCampaign(ctx, CreateCampaignRequest{
		ProjectID:   project.ID,
		HashListID:  hashList.ID,
		Name:        "q3-password-audit",
		Description: "quarterly domain audit",
		Priority:    models.PriorityUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, campaign.StateDraft, c.State)
	assert.Equal(t, models.PriorityUrgent, c.Priority)

	t.Run("requires name", func(t *testing.T) {
		_, err := svc.CreateCampaign(ctx, CreateCampaignRequest{
			ProjectID:  project.ID,
			HashListID: hashList.ID,
			Priority:   models.PriorityRoutine,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects foreign hash list", func(t *testing.T) {
		other := seedProject(t, db.Client)
		_, err := svc.CreateCampaign(ctx, CreateCampaignRequest{
			ProjectID:  other.ID,
			HashListID: hashList.ID,
			Name:       "cross-project",
			Priority:   models.PriorityRoutine,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown hash list", func(t *testing.T) {
		_, err := svc.CreateCampaign(ctx, CreateCampaignRequest{
			ProjectID:  project.ID,
			HashListID: 999999,
			Name:       "orphan",
			Priority:   models.PriorityRoutine,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		_, err := svc.CreateCampaign(ctx, CreateCampaignRequest{
			ProjectID:  project.ID,
			HashListID: hashList.ID,
			Name:       "bad-priority",
			Priority:   models.Priority(42),
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestCampaignService_ListCampaigns(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewCampaignService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 100, 100)

	routine, err := svc.CreateCampaign(ctx, CreateCampaignRequest{
		ProjectID: project.ID, HashListID: hashList.ID,
		Name: "routine-sweep", Priority: models.PriorityRoutine,
	})
	require.NoError(t, err)
	flash, err := svc.CreateCampaign(ctx, CreateCampaignRequest{
		ProjectID: project.ID, HashListID: hashList.ID,
		Name: "incident-response", Priority: models.PriorityFlash,
	})
	require.NoError(t, err)
	urgent, err := svc.CreateCampaign(ctx, CreateCampaignRequest{
		ProjectID: project.ID, HashListID: hashList.ID,
		Name: "breach-check", Priority: models.PriorityUrgent,
	})
	require.NoError(t, err)

	list, err := svc.ListCampaigns(ctx, project.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, flash.ID, list[0].ID)
	assert.Equal(t, urgent.ID, list[1].ID)
	assert.Equal(t, routine.ID, list[2].ID)

	// Archived campaigns drop out of the default view.
	_, err = svc.StartCampaign(ctx, routine.ID)
	require.NoError(t, err)
	_, err = svc.ArchiveCampaign(ctx, routine.ID)
	require.NoError(t, err)

	list, err = svc.ListCampaigns(ctx, project.ID, false)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	withArchived, err := svc.ListCampaigns(ctx, project.ID, true)
	require.NoError(t, err)
	assert.Len(t, withArchived, 3)
}

func TestCampaignService_UpdateCampaign(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewCampaignService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 100, 100)
	c, err := svc.CreateCampaign(ctx, CreateCampaignRequest{
		ProjectID: project.ID, HashListID: hashList.ID,
		Name: "before", Priority: models.PriorityRoutine,
	})
	require.NoError(t, err)

	name := "after"
	prio := models.PriorityImmediate
	updated, err := svc.UpdateCampaign(ctx, c.ID, UpdateCampaignRequest{
		Name:     &name,
		Priority: &prio,
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
	assert.Equal(t, models.PriorityImmediate, updated.Priority)

	t.Run("archived campaigns are immutable", func(t *testing.T) {
		_, err := svc.StartCampaign(ctx, c.ID)
		require.NoError(t, err)
		_, err = svc.ArchiveCampaign(ctx, c.ID)
		require.NoError(t, err)

		_, err = svc.UpdateCampaign(ctx, c.ID, UpdateCampaignRequest{Name: &name})
		assert.ErrorIs(t, err, ErrGuardRejected)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		empty := ""
		_, err := svc.UpdateCampaign(ctx, c.ID, UpdateCampaignRequest{Name: &empty})
		assert.True(t, IsValidationError(err))
	})
}

func TestCampaignService_DeleteCampaign(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewCampaignService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 100, 100)

	c, err := svc.CreateCampaign(ctx, CreateCampaignRequest{
		ProjectID: project.ID, HashListID: hashList.ID,
		Name: "short-lived", Priority: models.PriorityRoutine,
	})
	require.NoError(t, err)

	_, err = svc.StartCampaign(ctx, c.ID)
	require.NoError(t, err)

	err = svc.DeleteCampaign(ctx, c.ID)
	assert.ErrorIs(t, err, ErrGuardRejected)

	// Archiving takes it out of rotation; then delete is allowed.
	_, err = svc.ArchiveCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCampaign(ctx, c.ID))

	_, err = svc.GetCampaign(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCampaignService_Progress(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewCampaignService(db.Client, newEngine(db.Client))
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hashList := seedHashList(t, db.Client, project.ID, 200, 50)
	camp := seedActiveCampaign(t, db.Client, project.ID, hashList.ID)
	wordList := seedWordList(t, db.Client, project.ID, 1000)
	seedRunningAttack(t, db.Client, camp.ID, wordList.ID, 1000)

	p, err := svc.Progress(ctx, camp.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.AttackCount)
	assert.Equal(t, int64(200), p.ItemCount)
	assert.Equal(t, int64(150), p.CrackedCount)
	assert.InDelta(t, 75.0, p.PercentCracked, 0.01)
}
