package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent/resource"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

func TestResourceService_CreateResource(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewResourceService(db.Client)
	ctx := context.Background()

	lines := int64(14344392)
	res, err := svc.CreateResource(ctx, CreateResourceRequest{
		Name:         "rockyou",
		FileName:     "rockyou.txt",
		ResourceType: resource.ResourceTypeWordList,
		LineCount:    &lines,
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	require.NotNil(t, res.LineCount)
	assert.Equal(t, lines, *res.LineCount)
	assert.Contains(t, res.FileHandle, "rockyou.txt")

	t.Run("requires name", func(t *testing.T) {
		_, err := svc.CreateResource(ctx, CreateResourceRequest{
			FileName:     "x.txt",
			ResourceType: resource.ResourceTypeWordList,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := svc.CreateResource(ctx, CreateResourceRequest{
			Name:         "mystery",
			FileName:     "mystery.bin",
			ResourceType: resource.ResourceType("hologram"),
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects negative line count", func(t *testing.T) {
		negative := int64(-1)
		_, err := svc.CreateResource(ctx, CreateResourceRequest{
			Name:         "broken",
			FileName:     "broken.txt",
			ResourceType: resource.ResourceTypeWordList,
			LineCount:    &negative,
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestResourceService_SensitiveRequiresProject(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewResourceService(db.Client)
	ctx := context.Background()

	_, err := svc.CreateResource(ctx, CreateResourceRequest{
		Name:         "client-breach-dump",
		FileName:     "breach.txt",
		ResourceType: resource.ResourceTypeWordList,
		Sensitive:    true,
	})
	assert.True(t, IsValidationError(err), "unscoped sensitive resource must be rejected")

	project := seedProject(t, db.Client)
	res, err := svc.CreateResource(ctx, CreateResourceRequest{
		Name:         "client-breach-dump",
		FileName:     "breach.txt",
		ResourceType: resource.ResourceTypeWordList,
		Sensitive:    true,
		ProjectIDs:   []int{project.ID},
	})
	require.NoError(t, err)
	assert.True(t, res.Sensitive)

	projects, err := res.QueryProjects().All(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, project.ID, projects[0].ID)
}

func TestResourceService_SetLineCount(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewResourceService(db.Client)
	ctx := context.Background()

	res, err := svc.CreateResource(ctx, CreateResourceRequest{
		Name:         "custom-masks",
		FileName:     "masks.hcmask",
		ResourceType: resource.ResourceTypeMaskList,
	})
	require.NoError(t, err)
	assert.Nil(t, res.LineCount)

	counted, err := svc.SetLineCount(ctx, res.ID, 842)
	require.NoError(t, err)
	require.NotNil(t, counted.LineCount)
	assert.Equal(t, int64(842), *counted.LineCount)

	_, err = svc.SetLineCount(ctx, res.ID, -5)
	assert.True(t, IsValidationError(err))

	_, err = svc.SetLineCount(ctx, 999999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
