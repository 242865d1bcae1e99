// internal/transport/ws.go
package transport

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// defaultWriteTimeout bounds a single frame write when the caller's context
// carries no deadline.
const defaultWriteTimeout = 10 * time.Second

// WebSocket delivers pointer events as JSON text frames to a remote
// input-dispatch endpoint. Writes are serialized internally; the first
// failed write marks the channel disconnected and every later dispatch
// fails fast.
type WebSocket struct {
	mu        sync.Mutex
	conn      *websocket.Conn
	connected atomic.Bool
	logger    *zap.Logger
}

// DialWebSocket connects to the given ws:// or wss:// endpoint.
func DialWebSocket(ctx context.Context, url string, logger *zap.Logger) (*WebSocket, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", url, err)
	}

	t := &WebSocket{conn: conn, logger: logger}
	t.connected.Store(true)
	return t, nil
}

func (t *WebSocket) DispatchMove(ctx context.Context, ev PointerEvent) error {
	if !t.connected.Load() {
		return ErrDisconnected
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("transport: encode pointer event: %w", err)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultWriteTimeout)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("transport: set write deadline: %w", err)
	}
	if err := t.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.connected.Store(false)
		t.logger.Debug("websocket write failed", zap.Error(err))
		return fmt.Errorf("transport: write pointer event: %w", err)
	}
	return nil
}

func (t *WebSocket) Connected() bool {
	return t.connected.Load()
}

// Close shuts the channel down. Dispatches after Close fail with
// ErrDisconnected.
func (t *WebSocket) Close() error {
	t.connected.Store(false)
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conn.Close()
}
