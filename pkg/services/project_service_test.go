package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

func TestProjectService_CreateProject(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewProjectService(db.Client)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, CreateProjectRequest{
		Name:        "acme-pentest-2026",
		Description: "external engagement, Q3",
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "acme-pentest-2026", p.Name)

	t.Run("requires name", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, CreateProjectRequest{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, CreateProjectRequest{Name: "acme-pentest-2026"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestProjectService_GetProject(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewProjectService(db.Client)
	ctx := context.Background()

	seeded := seedProject(t, db.Client)

	p, err := svc.GetProject(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, p.Name)

	_, err = svc.GetProject(ctx, 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_ListProjects(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewProjectService(db.Client)
	ctx := context.Background()

	first, err := svc.CreateProject(ctx, CreateProjectRequest{Name: "blue-team-lab"})
	require.NoError(t, err)
	second, err := svc.CreateProject(ctx, CreateProjectRequest{Name: "acme-pentest-2026"})
	require.NoError(t, err)

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID, "newest first")
	assert.Equal(t, first.ID, projects[1].ID)
}
