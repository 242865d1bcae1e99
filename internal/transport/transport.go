// internal/transport/transport.go
package transport

import (
	"context"
	"errors"
)

// ErrDisconnected reports a channel whose remote surface is gone. A
// controller treats it as terminal for the move in flight.
var ErrDisconnected = errors.New("transport: not connected")

// PointerEvent is one positional sample delivered to the controlled
// surface.
type PointerEvent struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Timestamp is the synthesized event time in unix milliseconds, only
	// meaningful when Timed is set.
	Timestamp int64 `json:"timestamp,omitempty"`
	Timed     bool  `json:"-"`
}

// Transport turns pointer events into actual positional input on a remote
// surface. Implementations serialize their own channel; the cursor
// controller never dispatches concurrently on one transport.
type Transport interface {
	// DispatchMove delivers a single move event and waits for the
	// channel's acknowledgment.
	DispatchMove(ctx context.Context, ev PointerEvent) error
	// Connected reports whether the remote surface is still reachable.
	Connected() bool
}
