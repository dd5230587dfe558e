package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

func TestHashListService_CreateHashList(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewHashListService(db.Client)
	ctx := context.Background()

	project := seedProject(t, db.Client)

	hl, err := svc.CreateHashList(ctx, CreateHashListRequest{
		ProjectID:  project.ID,
		Name:       "dc01-ntds",
		HashTypeID: 1000,
		Separator:  ":",
		Items: []HashItemInput{
			{Hash: "aad3b435b51404eeaad3b435b51404ee"},
			{Hash: "31d6cfe0d16ae931b73c59d7e0c089c0"},
			{Hash: "31d6cfe0d16ae931b73c59d7e0c089c0"}, // duplicate in batch
			{Hash: "5835048ce94ad0564e29a924a03510ef", Metadata: map[string]any{"username": "svc_backup"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), hl.ItemCount)
	assert.Equal(t, int64(3), hl.UncrackedCount)

	t.Run("requires project", func(t *testing.T) {
		_, err := svc.CreateHashList(ctx, CreateHashListRequest{Name: "x", HashTypeID: 0})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty item hash", func(t *testing.T) {
		_, err := svc.CreateHashList(ctx, CreateHashListRequest{
			ProjectID:  project.ID,
			Name:       "broken",
			HashTypeID: 1000,
			Items:      []HashItemInput{{Hash: ""}},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestHashListService_AddItems(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewHashListService(db.Client)
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hl, err := svc.CreateHashList(ctx, CreateHashListRequest{
		ProjectID:  project.ID,
		Name:       "dc01-ntds",
		HashTypeID: 1000,
		Items:      []HashItemInput{{Hash: "aad3b435b51404eeaad3b435b51404ee"}},
	})
	require.NoError(t, err)

	// Appending a mix of new and already-present hashes only adds the new.
	hl, err = svc.AddItems(ctx, hl.ID, []HashItemInput{
		{Hash: "aad3b435b51404eeaad3b435b51404ee"},
		{Hash: "31d6cfe0d16ae931b73c59d7e0c089c0"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), hl.ItemCount)
	assert.Equal(t, int64(2), hl.UncrackedCount)

	// Same hash with a different salt is a distinct target.
	hl, err = svc.AddItems(ctx, hl.ID, []HashItemInput{
		{Hash: "31d6cfe0d16ae931b73c59d7e0c089c0", Salt: "s4lt"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), hl.ItemCount)

	_, err = svc.AddItems(ctx, 999999, []HashItemInput{{Hash: "ff"}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHashListService_RenderUncracked(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewHashListService(db.Client)
	ctx := context.Background()

	project := seedProject(t, db.Client)
	hl, err := svc.CreateHashList(ctx, CreateHashListRequest{
		ProjectID:  project.ID,
		Name:       "web-md5",
		HashTypeID: 10,
		Separator:  ":",
		Items: []HashItemInput{
			{Hash: "0cc175b9c0f1b6a831c399e269772661", Salt: "pepper"},
			{Hash: "92eb5ffee6ae2fec3ad71c777531578f"},
			{Hash: "4a8a08f09d37b73795649038408b5f33"},
		},
	})
	require.NoError(t, err)

	// Crack one item; it must drop out of the download.
	db.Client.HashItem.Update().
		Where(hashitem.HashListIDEQ(hl.ID), hashitem.HashValueEQ("92eb5ffee6ae2fec3ad71c777531578f")).
		SetPlaintext("b").
		SetCrackedAt(time.Now()).
		ExecX(ctx)

	body, checksum, err := svc.RenderUncracked(ctx, hl.ID)
	require.NoError(t, err)
	assert.Equal(t,
		"0cc175b9c0f1b6a831c399e269772661:pepper\n4a8a08f09d37b73795649038408b5f33\n",
		string(body))
	assert.NotEmpty(t, checksum)

	// Same body, same checksum.
	_, again, err := svc.RenderUncracked(ctx, hl.ID)
	require.NoError(t, err)
	assert.Equal(t, checksum, again)

	cracked, err := svc.CrackedHashValues(ctx, hl.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"92eb5ffee6ae2fec3ad71c777531578f"}, cracked)
}
