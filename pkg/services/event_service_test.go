package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

func seedEvent(t *testing.T, client *ent.Client, channel, eventType string, createdAt time.Time) *ent.Event {
	t.Helper()
	return client.Event.Create().
		SetChannel(channel).
		SetEventType(eventType).
		SetPayload(map[string]any{"type": eventType}).
		SetCreatedAt(createdAt).
		SaveX(context.Background())
}

func TestEventService_GetEventsSince(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewEventService(db.Client)
	ctx := context.Background()
	now := time.Now()

	var ids []int
	for range 5 {
		ev := seedEvent(t, db.Client, "campaigns", "campaign_status", now)
		ids = append(ids, ev.ID)
	}
	seedEvent(t, db.Client, "agents", "agent_status", now)

	t.Run("replays oldest first after the cursor", func(t *testing.T) {
		evts, err := svc.GetEventsSince(ctx, "campaigns", ids[1], 100)
		require.NoError(t, err)
		require.Len(t, evts, 3)
		assert.Equal(t, ids[2], evts[0].ID)
		assert.Equal(t, ids[4], evts[2].ID)
	})

	t.Run("filters by channel", func(t *testing.T) {
		evts, err := svc.GetEventsSince(ctx, "agents", 0, 100)
		require.NoError(t, err)
		require.Len(t, evts, 1)
		assert.Equal(t, "agent_status", evts[0].EventType)
	})

	t.Run("caps the page size", func(t *testing.T) {
		evts, err := svc.GetEventsSince(ctx, "campaigns", 0, 2)
		require.NoError(t, err)
		assert.Len(t, evts, 2)
	})

	t.Run("defaults the limit when unset", func(t *testing.T) {
		evts, err := svc.GetEventsSince(ctx, "campaigns", 0, 0)
		require.NoError(t, err)
		assert.Len(t, evts, 5)
	})

	t.Run("empty channel history", func(t *testing.T) {
		evts, err := svc.GetEventsSince(ctx, "tasks", 0, 100)
		require.NoError(t, err)
		assert.Empty(t, evts)
	})
}

func TestEventService_LatestEventID(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewEventService(db.Client)
	ctx := context.Background()

	id, err := svc.LatestEventID(ctx, "campaigns")
	require.NoError(t, err)
	assert.Equal(t, 0, id, "empty channel reports zero")

	seedEvent(t, db.Client, "campaigns", "campaign_status", time.Now())
	last := seedEvent(t, db.Client, "campaigns", "campaign_status", time.Now())

	id, err = svc.LatestEventID(ctx, "campaigns")
	require.NoError(t, err)
	assert.Equal(t, last.ID, id)
}

func TestEventService_CleanupOlderThan(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewEventService(db.Client)
	ctx := context.Background()
	now := time.Now()

	seedEvent(t, db.Client, "campaigns", "campaign_status", now.Add(-10*24*time.Hour))
	seedEvent(t, db.Client, "campaigns", "campaign_status", now.Add(-8*24*time.Hour))
	kept := seedEvent(t, db.Client, "campaigns", "campaign_status", now.Add(-time.Hour))

	n, err := svc.CleanupOlderThan(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	evts, err := svc.GetEventsSince(ctx, "campaigns", 0, 100)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, kept.ID, evts[0].ID)

	n, err = svc.CleanupOlderThan(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n, "second sweep finds nothing")
}
