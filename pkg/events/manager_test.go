package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier serves canned events and records what was asked for.
type mockCatchupQuerier struct {
	mu      sync.Mutex
	events  []CatchupEvent
	err     error
	channel string
	sinceID int
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	m.mu.Lock()
	m.channel = channel
	m.sinceID = sinceID
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func newTestServer(t *testing.T, manager *ConnectionManager) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)
	return server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	return manager, newTestServer(t, manager)
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+server.URL[len("http"):], nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func send(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestValidChannel(t *testing.T) {
	valid := []string{"campaigns", "agents", "campaign:1", "campaign:42", "campaign:99999"}
	for _, ch := range valid {
		assert.True(t, validChannel(ch), "channel %q should be valid", ch)
	}

	invalid := []string{"", "campaign:", "campaign:0", "campaign:-3", "campaign:abc",
		"campaign:1:2", "Campaigns", "agents:1", "session:xyz", "pg_notify"}
	for _, ch := range invalid {
		assert.False(t, validChannel(ch), "channel %q should be invalid", ch)
	}
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestConnectionManager_SubscribeConfirmedThenCatchup(t *testing.T) {
	querier := &mockCatchupQuerier{events: []CatchupEvent{
		{ID: 10, Payload: map[string]interface{}{"type": EventTypeCampaignStatus, "state": "running"}},
		{ID: 11, Payload: map[string]interface{}{"type": EventTypeTaskStatus, "state": "pending"}},
	}}
	manager := NewConnectionManager(querier, 5*time.Second)
	server := newTestServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	send(t, conn, ClientMessage{Action: "subscribe", Channel: "campaign:7"})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "campaign:7", msg["channel"])

	// Subscribing replays the channel's history with db_event_id injected.
	first := readJSON(t, conn)
	assert.Equal(t, EventTypeCampaignStatus, first["type"])
	assert.Equal(t, float64(10), first["db_event_id"])

	second := readJSON(t, conn)
	assert.Equal(t, EventTypeTaskStatus, second["type"])
	assert.Equal(t, float64(11), second["db_event_id"])

	querier.mu.Lock()
	assert.Equal(t, "campaign:7", querier.channel)
	assert.Equal(t, 0, querier.sinceID)
	querier.mu.Unlock()
}

func TestConnectionManager_InitialChannelFromQuery(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn, r.URL.Query().Get("channel"))
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+server.URL[len("http"):]+"/?channel=campaign:12", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	assert.Equal(t, "connection.established", readJSON(t, conn)["type"])

	// The query-parameter channel behaves exactly like a subscribe message.
	confirmed := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", confirmed["type"])
	assert.Equal(t, "campaign:12", confirmed["channel"])
	assert.Equal(t, 1, manager.subscriberCount("campaign:12"))
}

func TestConnectionManager_RejectsUnknownChannel(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	send(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.error", msg["type"])
	assert.Equal(t, "session:abc", msg["channel"])
	assert.Contains(t, msg["message"], "unknown channel")
	assert.Equal(t, 0, manager.subscriberCount("session:abc"))

	// Rejection leaves the connection usable.
	send(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_BroadcastReachesSubscribers(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	send(t, conn1, ClientMessage{Action: "subscribe", Channel: GlobalCampaignsChannel})
	send(t, conn2, ClientMessage{Action: "subscribe", Channel: GlobalCampaignsChannel})
	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn2)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeCampaignStatus, "state": "completed"})
	manager.Broadcast(GlobalCampaignsChannel, payload)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, conn)
		assert.Equal(t, EventTypeCampaignStatus, msg["type"])
		assert.Equal(t, "completed", msg["state"])
	}
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1) // connection.established
	readJSON(t, conn2)

	send(t, conn1, ClientMessage{Action: "subscribe", Channel: "campaign:1"})
	readJSON(t, conn1) // subscription.confirmed
	send(t, conn2, ClientMessage{Action: "subscribe", Channel: "campaign:2"})
	readJSON(t, conn2)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeTaskStatus, "campaign": "1"})
	manager.Broadcast("campaign:1", payload)

	msg := readJSON(t, conn1)
	assert.Equal(t, "1", msg["campaign"])

	readCtx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "campaign:2 subscriber must not see campaign:1 traffic")
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	send(t, conn, ClientMessage{Action: "subscribe", Channel: AgentsChannel})
	readJSON(t, conn) // subscription.confirmed
	require.Equal(t, 1, manager.subscriberCount(AgentsChannel))

	send(t, conn, ClientMessage{Action: "unsubscribe", Channel: AgentsChannel})
	require.Eventually(t, func() bool {
		return manager.subscriberCount(AgentsChannel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeAgentStatus})
	manager.Broadcast(AgentsChannel, payload)

	readCtx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "no delivery after unsubscribe")
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	many := make([]CatchupEvent, catchupLimit+5)
	for i := range many {
		many[i] = CatchupEvent{
			ID:      i + 1,
			Payload: map[string]interface{}{"type": EventTypeCrackObserved, "seq": i},
		}
	}
	manager := NewConnectionManager(&mockCatchupQuerier{events: many}, 5*time.Second)
	server := newTestServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	send(t, conn, ClientMessage{Action: "subscribe", Channel: "campaign:3"})
	readJSON(t, conn) // subscription.confirmed

	got := 0
	var overflow bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflow = true
			assert.Equal(t, true, msg["has_more"])
			assert.Equal(t, "campaign:3", msg["channel"])
			break
		}
		got++
	}
	assert.True(t, overflow, "expected catchup.overflow after the capped replay")
	assert.Equal(t, catchupLimit, got)
}

func TestConnectionManager_CatchupQueryFailure(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{err: fmt.Errorf("database unreachable")}, 5*time.Second)
	server := newTestServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	send(t, conn, ClientMessage{Action: "subscribe", Channel: "campaign:9"})
	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])

	// The failed replay is logged, not fatal; live traffic still flows.
	send(t, conn, ClientMessage{Action: "ping"})
	msg = readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_ExplicitCatchupSince(t *testing.T) {
	querier := &mockCatchupQuerier{events: []CatchupEvent{
		{ID: 43, Payload: map[string]interface{}{"type": EventTypeCrackObserved, "plain": "hunter2"}},
	}}
	manager := NewConnectionManager(querier, 5*time.Second)
	server := newTestServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	since := 42
	send(t, conn, ClientMessage{Action: "catchup", Channel: "campaign:5", LastEventID: &since})

	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeCrackObserved, msg["type"])
	assert.Equal(t, float64(43), msg["db_event_id"])

	querier.mu.Lock()
	assert.Equal(t, 42, querier.sinceID)
	querier.mu.Unlock()
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	send(t, conn, ClientMessage{Action: "subscribe", Channel: "campaign:11"})
	readJSON(t, conn) // subscription.confirmed

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]interface{}{"type": EventTypeTaskProgress, "idx": idx})
			manager.Broadcast("campaign:11", payload)
		}(i)
	}
	wg.Wait()

	received := 0
	for i := 0; i < 20; i++ {
		readCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		cancel()
		if err != nil {
			break
		}
		received++
	}
	assert.Equal(t, 20, received)
}

func TestConnectionManager_BroadcastWithoutSubscribers(t *testing.T) {
	manager, _ := setupTestManager(t)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeCampaignStatus})
	assert.NotPanics(t, func() {
		manager.Broadcast("campaign:404", payload)
	})
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	send(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalCampaignsChannel})
	readJSON(t, conn) // subscription.confirmed
	require.Equal(t, 1, manager.ActiveConnections())

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return manager.subscriberCount(GlobalCampaignsChannel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeCampaignStatus})
	assert.NotPanics(t, func() {
		manager.Broadcast(GlobalCampaignsChannel, payload)
	})
}

func TestConnectionManager_SetListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager)
	manager.SetListener(listener)

	manager.listenerMu.RLock()
	assert.Equal(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}
