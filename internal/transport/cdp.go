// internal/transport/cdp.go
package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// CDP delivers pointer events to a browser tab over the Chrome DevTools
// Protocol as Input.dispatchMouseEvent commands.
type CDP struct {
	// browserCtx is the chromedp context of the target tab. It carries the
	// protocol executor and doubles as the liveness signal.
	browserCtx context.Context
	logger     *zap.Logger
}

// NewCDP wraps an established chromedp context. The caller owns the
// context's lifecycle.
func NewCDP(browserCtx context.Context, logger *zap.Logger) *CDP {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CDP{browserCtx: browserCtx, logger: logger}
}

func (t *CDP) DispatchMove(ctx context.Context, ev PointerEvent) error {
	c := chromedp.FromContext(t.browserCtx)
	if c == nil || c.Target == nil {
		return ErrDisconnected
	}

	p := input.DispatchMouseEvent(input.MouseMoved, ev.X, ev.Y)
	if ev.Timed {
		ts := input.TimeSinceEpoch(time.UnixMilli(ev.Timestamp))
		p = p.WithTimestamp(&ts)
	}

	if err := p.Do(cdp.WithExecutor(ctx, c.Target)); err != nil {
		t.logger.Debug("mouse move dispatch failed", zap.Error(err))
		return fmt.Errorf("transport: dispatch mouse move: %w", err)
	}
	return nil
}

func (t *CDP) Connected() bool {
	c := chromedp.FromContext(t.browserCtx)
	if c == nil || c.Browser == nil {
		return false
	}
	select {
	case <-t.browserCtx.Done():
		return false
	default:
		return true
	}
}
