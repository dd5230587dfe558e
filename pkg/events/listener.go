package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// notifyWaitTimeout bounds WaitForNotification so the receive loop
// regularly comes back around to drain pending LISTEN/UNLISTEN ops.
const notifyWaitTimeout = 100 * time.Millisecond

// reconnectBackoffMax caps the exponential backoff between reconnect
// attempts after the LISTEN connection drops.
const reconnectBackoffMax = 30 * time.Second

// listenOp is a LISTEN or UNLISTEN statement queued for the receive loop.
// The loop is the only goroutine allowed to touch the pgx connection;
// running Exec concurrently with WaitForNotification trips "conn busy".
type listenOp struct {
	sql  string
	done chan error
}

// NotifyListener holds one dedicated PostgreSQL connection, LISTENs on the
// channels local clients care about, and hands every notification to the
// ConnectionManager. One per pod; it is what makes events published by
// other pods visible here.
type NotifyListener struct {
	dsn     string
	manager *ConnectionManager

	mu   sync.Mutex
	conn *pgx.Conn

	activeMu sync.RWMutex
	active   map[string]bool // channels currently under LISTEN

	ops     chan listenOp
	started atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates a listener that will connect with dsn and
// broadcast received notifications through manager.
func NewNotifyListener(dsn string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		dsn:     dsn,
		manager: manager,
		active:  make(map[string]bool),
		ops:     make(chan listenOp, 16),
	}
}

// Start opens the dedicated connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("connect for LISTEN: %w", err)
	}

	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()

	l.started.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NOTIFY listener started")
	return nil
}

// Subscribe issues LISTEN for a channel. Returns once the statement has
// actually run, so callers may rely on notifications flowing afterward.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.activeMu.RLock()
	already := l.active[channel]
	l.activeMu.RUnlock()
	if already {
		return nil
	}

	// Identifier quoting also covers the colon in campaign:<id>.
	if err := l.exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("LISTEN %s: %w", channel, err)
	}

	l.activeMu.Lock()
	l.active[channel] = true
	l.activeMu.Unlock()
	slog.Debug("Listening on NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for a channel.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.activeMu.RLock()
	listening := l.active[channel]
	l.activeMu.RUnlock()
	if !listening {
		return nil
	}

	if err := l.exec(ctx, "UNLISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("UNLISTEN %s: %w", channel, err)
	}

	l.activeMu.Lock()
	delete(l.active, channel)
	l.activeMu.Unlock()
	return nil
}

// exec queues a statement for the receive loop and waits for the result.
func (l *NotifyListener) exec(ctx context.Context, sql string) error {
	if !l.started.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	op := listenOp{sql: sql, done: make(chan error, 1)}

	select {
	case l.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-op.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop alternates between draining queued LISTEN/UNLISTEN ops and
// waiting for notifications. On connection errors it reconnects with
// backoff and re-issues LISTEN for every active channel.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainOps(ctx)

		l.mu.Lock()
		conn := l.conn
		l.mu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, notifyWaitTimeout)
		n, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue // wait timeout, go drain ops
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.manager.Broadcast(n.Channel, []byte(n.Payload))
	}
}

func (l *NotifyListener) drainOps(ctx context.Context) {
	for {
		select {
		case op := <-l.ops:
			l.mu.Lock()
			conn := l.conn
			l.mu.Unlock()

			if conn == nil {
				op.done <- fmt.Errorf("LISTEN connection not established")
				continue
			}

			_, err := conn.Exec(ctx, op.sql)
			op.done <- err
		default:
			return
		}
	}
}

func (l *NotifyListener) reconnect(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.dsn)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, reconnectBackoffMax)
			continue
		}
		l.conn = conn

		// The server forgot our subscriptions with the old session.
		l.activeMu.RLock()
		for ch := range l.active {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}
		l.activeMu.RUnlock()

		slog.Info("NOTIFY listener reconnected")
		return
	}
}

// Stop shuts the receive loop down, then closes the connection. Loop first:
// closing a connection out from under WaitForNotification is a race.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.started.Store(false)

	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
