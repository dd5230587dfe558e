package events_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/pkg/database"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/services"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
	"github.com/cipherswarm/cipherswarm/test/util"
)

// streamingTestEnv wires the real event pipeline against a real PostgreSQL:
// publisher -> events table + pg_notify -> NotifyListener -> ConnectionManager
// -> WebSocket client.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *events.EventPublisher
	eventService *services.EventService
	manager      *events.ConnectionManager
	listener     *events.NotifyListener
	server       *httptest.Server
	campaign     *ent.Campaign
	channel      string // campaign:<id>
}

func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	project := dbClient.Project.Create().
		SetName("streaming-" + uuid.NewString()).
		SaveX(ctx)
	hashList := dbClient.HashList.Create().
		SetProjectID(project.ID).
		SetName("ntds-" + uuid.NewString()).
		SetHashTypeID(1000).
		SetItemCount(5).
		SetUncrackedCount(5).
		SaveX(ctx)
	camp := dbClient.Campaign.Create().
		SetProjectID(project.ID).
		SetHashListID(hashList.ID).
		SetName("q3-audit-" + uuid.NewString()).
		SetState(campaign.StateActive).
		SaveX(ctx)

	publisher := events.NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	manager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 5*time.Second)

	// The listener needs the base connection string, without the test
	// schema's search_path. NOTIFY is database-level, not schema-level.
	listener := events.NewNotifyListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		campaign:     camp,
		channel:      events.CampaignChannel(camp.ID),
	}
}

func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+env.server.URL[len("http"):], nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func wsSend(t *testing.T, conn *websocket.Conn, msg events.ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func wsReadJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribe connects, reads connection.established, subscribes to channel,
// and reads subscription.confirmed. LISTEN runs before the confirmation is
// written, so once confirmed the pipeline is live; no settling sleep needed.
func (env *streamingTestEnv) subscribe(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := wsReadJSON(t, conn)
	require.Equal(t, "connection.established", msg["type"])

	wsSend(t, conn, events.ClientMessage{Action: "subscribe", Channel: channel})
	msg = wsReadJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])
	return conn
}

// readUntil skips frames until one satisfies match. Campaign IDs restart
// per schema, so parallel CI packages sharing one database can leak
// notifications for an identically numbered campaign onto our channel;
// filtering keeps those from tripping assertions.
func readUntil(t *testing.T, conn *websocket.Conn, match func(map[string]interface{}) bool) map[string]interface{} {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		ctx, cancel := context.WithDeadline(context.Background(), deadline)
		_, data, err := conn.Read(ctx)
		cancel()
		require.NoError(t, err, "connection closed before a matching frame arrived")
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &msg))
		if match(msg) {
			return msg
		}
	}
	t.Fatal("no matching frame within deadline")
	return nil
}

func matchType(eventType string) func(map[string]interface{}) bool {
	return func(msg map[string]interface{}) bool {
		return msg["type"] == eventType
	}
}

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishCampaignStatus(ctx, events.CampaignStatusPayload{
		Type:       events.EventTypeCampaignStatus,
		CampaignID: env.campaign.ID,
		State:      campaign.StateActive,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	err = env.publisher.PublishTaskStatus(ctx, events.TaskStatusPayload{
		Type:       events.EventTypeTaskStatus,
		CampaignID: env.campaign.ID,
		AttackID:   1,
		TaskID:     1,
		State:      "running",
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	evts, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, evts, 2)

	assert.Equal(t, env.channel, evts[0].Channel)
	assert.Equal(t, events.EventTypeCampaignStatus, evts[0].EventType)
	assert.Equal(t, events.EventTypeCampaignStatus, evts[0].Payload["type"])
	assert.Equal(t, "active", evts[0].Payload["state"])

	assert.Equal(t, events.EventTypeTaskStatus, evts[1].EventType)
	assert.Equal(t, "running", evts[1].Payload["state"])
	assert.Greater(t, evts[1].ID, evts[0].ID)
}

func TestIntegration_ProgressPingsAreNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishTaskProgress(ctx, events.TaskProgressPayload{
		Type:            events.EventTypeTaskProgress,
		CampaignID:      env.campaign.ID,
		AttackID:        1,
		TaskID:          1,
		ProgressPercent: 42.5,
		Timestamp:       time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	evts, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, evts, "progress pings must never hit the events table")
}

func TestIntegration_PublishReachesWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribe(t, env.channel)

	err := env.publisher.PublishCrackObserved(ctx, events.CrackObservedPayload{
		Type:       events.EventTypeCrackObserved,
		CampaignID: env.campaign.ID,
		HashListID: 1,
		TaskID:     7,
		AgentID:    3,
		Uncracked:  4,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readUntil(t, conn, matchType(events.EventTypeCrackObserved))
	assert.Equal(t, float64(env.campaign.ID), msg["campaign_id"])
	assert.Equal(t, float64(7), msg["task_id"])
	assert.Equal(t, float64(4), msg["uncracked"])
	assert.NotNil(t, msg["db_event_id"], "persistent events carry db_event_id on the wire")
}

func TestIntegration_TransientDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribe(t, env.channel)

	err := env.publisher.PublishTaskProgress(ctx, events.TaskProgressPayload{
		Type:            events.EventTypeTaskProgress,
		CampaignID:      env.campaign.ID,
		AttackID:        2,
		TaskID:          9,
		ProgressPercent: 61.8,
		Timestamp:       time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readUntil(t, conn, matchType(events.EventTypeTaskProgress))
	assert.Equal(t, float64(9), msg["task_id"])
	assert.Equal(t, 61.8, msg["progress_percent"])
	assert.Nil(t, msg["db_event_id"], "transient events have no durable ID")

	evts, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, evts)
}

func TestIntegration_GlobalCampaignsFanout(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Subscribed to the global list channel, not the campaign's own.
	conn := env.subscribe(t, events.GlobalCampaignsChannel)

	err := env.publisher.PublishCampaignStatus(ctx, events.CampaignStatusPayload{
		Type:       events.EventTypeCampaignStatus,
		CampaignID: env.campaign.ID,
		State:      campaign.StateCompleted,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	msg := readUntil(t, conn, func(m map[string]interface{}) bool {
		return m["type"] == events.EventTypeCampaignStatus && m["campaign_id"] == float64(env.campaign.ID)
	})
	assert.Equal(t, "completed", msg["state"])

	// The durable copy lives on the campaign channel only.
	evts, err := env.eventService.GetEventsSince(ctx, events.GlobalCampaignsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, evts, "the global copy is transient")

	evts, err = env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, evts, 1)
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishTaskStatus(ctx, events.TaskStatusPayload{
			Type:       events.EventTypeTaskStatus,
			CampaignID: env.campaign.ID,
			AttackID:   1,
			TaskID:     i,
			State:      "pending",
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
	}

	all, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)
	firstEventID := all[0].ID

	// A fresh client subscribing late replays the whole channel in order.
	conn := env.subscribe(t, env.channel)
	for i := 1; i <= 3; i++ {
		msg := readUntil(t, conn, matchType(events.EventTypeTaskStatus))
		assert.Equal(t, float64(i), msg["task_id"])
		assert.Equal(t, float64(all[i-1].ID), msg["db_event_id"])
	}

	// Explicit catchup from the first ID replays only what follows it.
	wsSend(t, conn, events.ClientMessage{Action: "catchup", Channel: env.channel, LastEventID: &firstEventID})
	for i := 2; i <= 3; i++ {
		msg := readUntil(t, conn, matchType(events.EventTypeTaskStatus))
		assert.Equal(t, float64(i), msg["task_id"])
	}
}
