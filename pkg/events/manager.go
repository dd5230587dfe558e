package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps how many missed events one catchup response carries.
// Beyond it the client gets catchup.overflow and should reload over REST.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when the first
// subscriber of a channel arrives. A stalled LISTEN connection must not
// wedge the client's read loop.
const listenTimeout = 10 * time.Second

// CatchupEvent is one replayed event row.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier replays persisted events for reconnecting clients.
// Implemented by EventService through EventServiceAdapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// validChannel reports whether a subscription target is one of ours:
// "campaigns", "agents", or "campaign:<id>". Anything else is rejected
// so clients cannot LISTEN on arbitrary PostgreSQL channels.
func validChannel(channel string) bool {
	if channel == GlobalCampaignsChannel || channel == AgentsChannel {
		return true
	}
	id, ok := strings.CutPrefix(channel, "campaign:")
	if !ok {
		return false
	}
	n, err := strconv.Atoi(id)
	return err == nil && n > 0
}

// ConnectionManager owns this pod's WebSocket clients and their channel
// subscriptions. Broadcasts arrive from the NotifyListener, so every pod
// sees every event regardless of which pod published it.
type ConnectionManager struct {
	mu      sync.RWMutex
	clients map[string]*wsClient

	subsMu sync.RWMutex
	subs   map[string]map[string]bool // channel -> client IDs

	catchup CatchupQuerier

	listenerMu sync.RWMutex
	listener   *NotifyListener

	writeTimeout time.Duration
}

// wsClient is one WebSocket connection. subscriptions is only touched by
// the goroutine running HandleConnection (read loop plus its deferred
// cleanup), so it needs no lock.
type wsClient struct {
	id            string
	conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a connection manager. catchup may be nil,
// which disables event replay.
func NewConnectionManager(catchup CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		clients:      make(map[string]*wsClient),
		subs:         make(map[string]map[string]bool),
		catchup:      catchup,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the NotifyListener for dynamic LISTEN/UNLISTEN. Called
// once at startup after both sides exist.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection runs one client's lifecycle. Called by the WebSocket
// handler after the upgrade; blocks until the connection closes. Any
// initialChannels are subscribed before the read loop starts, covering
// clients that pass ?channel= instead of sending a subscribe message.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, initialChannels ...string) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &wsClient{
		id:            uuid.NewString(),
		conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.register(c)
	defer m.unregister(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.id,
	})

	for _, channel := range initialChannels {
		m.handleClientMessage(ctx, c, &ClientMessage{Action: "subscribe", Channel: channel})
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.id, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast delivers one event to every local subscriber of the channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.subsMu.RLock()
	ids := make([]string, 0, len(m.subs[channel]))
	for id := range m.subs[channel] {
		ids = append(ids, id)
	}
	m.subsMu.RUnlock()

	if len(ids) == 0 {
		return
	}

	// Snapshot the clients, then send without holding any lock: a slow
	// client write (up to writeTimeout) must not block register/unregister.
	m.mu.RLock()
	targets := make([]*wsClient, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.clients[id]; ok {
			targets = append(targets, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range targets {
		if err := m.sendRaw(c, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", c.id, "channel", channel, "error", err)
		}
	}
}

// ActiveConnections returns how many clients this pod currently serves.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// subscriberCount is polled by tests instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.subsMu.RLock()
	defer m.subsMu.RUnlock()
	return len(m.subs[channel])
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *wsClient, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if !validChannel(msg.Channel) {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "unknown channel",
			})
			return
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Late subscribers replay everything they missed.
		m.sendCatchup(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if !validChannel(msg.Channel) {
			m.sendJSON(c, map[string]string{"type": "error", "message": "unknown channel"})
			return
		}
		if msg.LastEventID != nil {
			m.sendCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe adds the client to a channel, issuing LISTEN when it is the
// channel's first subscriber. LISTEN completes before subscribe returns,
// so the auto-catchup that follows cannot race events published between
// the two; an error here means the client must not be told it subscribed.
func (m *ConnectionManager) subscribe(c *wsClient, channel string) error {
	m.subsMu.Lock()
	needsListen := false
	if _, ok := m.subs[channel]; !ok {
		m.subs[channel] = make(map[string]bool)
		needsListen = true
	}
	m.subs[channel][c.id] = true
	m.subsMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.dropFailedChannel(c, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	c.subscriptions[channel] = true
	return nil
}

// dropFailedChannel removes every subscriber of a channel after a LISTEN
// failure. Clients that subscribed while the LISTEN was in flight saw the
// channel entry and skipped their own LISTEN; they were confirmed but are
// not actually wired, so each gets a subscription.error and must treat it
// as authoritative over the earlier confirmation.
func (m *ConnectionManager) dropFailedChannel(triggering *wsClient, channel string) {
	m.subsMu.Lock()
	affected := make([]string, 0, len(m.subs[channel]))
	for id := range m.subs[channel] {
		if id != triggering.id {
			affected = append(affected, id)
		}
	}
	delete(m.subs, channel)
	m.subsMu.Unlock()

	if len(affected) == 0 {
		return
	}

	m.mu.RLock()
	targets := make([]*wsClient, 0, len(affected))
	for _, id := range affected {
		if c, ok := m.clients[id]; ok {
			targets = append(targets, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range targets {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", c.id, "channel", channel)
		m.sendJSON(c, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe drops the client from a channel, issuing UNLISTEN when the
// last subscriber leaves. The UNLISTEN goroutine re-checks m.subs first:
// a rapid unsubscribe/resubscribe cycle re-adds the channel, and firing
// the stale UNLISTEN then would silently kill the live subscription.
func (m *ConnectionManager) unsubscribe(c *wsClient, channel string) {
	m.subsMu.Lock()
	if ids, ok := m.subs[channel]; ok {
		delete(ids, c.id)
		if len(ids) == 0 {
			delete(m.subs, channel)
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.subsMu.RLock()
					_, resubscribed := m.subs[channel]
					m.subsMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.subsMu.Unlock()

	delete(c.subscriptions, channel)
}

// sendCatchup replays persisted events newer than lastEventID in order.
// db_event_id is injected from the row ID here because stored payloads
// never carry it; only NOTIFY copies do.
func (m *ConnectionManager) sendCatchup(ctx context.Context, c *wsClient, channel string, lastEventID int) {
	if m.catchup == nil {
		return
	}

	events, err := m.catchup.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	overflow := len(events) > catchupLimit
	if overflow {
		events = events[:catchupLimit]
	}

	for _, evt := range events {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event", "connection_id", c.id, "error", err)
			return
		}
	}

	if overflow {
		m.sendJSON(c, map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

func (m *ConnectionManager) register(c *wsClient) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[c.id] = c
}

func (m *ConnectionManager) unregister(c *wsClient) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.clients, c.id)
	m.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *wsClient, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.id, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.id, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *wsClient, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
