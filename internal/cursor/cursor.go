// internal/cursor/cursor.go
package cursor

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/humancursor/internal/geometry"
	"github.com/xkilldash9x/humancursor/internal/motion"
	"github.com/xkilldash9x/humancursor/internal/transport"
)

// Position is an immutable snapshot of the cursor state.
type Position struct {
	Point geometry.Vector
	// Timestamp is the synthesized time of the last committed point in
	// unix milliseconds, meaningful only when Timed is set.
	Timestamp int64
	Timed     bool
}

// Config describes a cursor at construction time.
type Config struct {
	// Start is the initial cursor position.
	Start geometry.Vector
	// Algorithm generates traces; nil selects the default curve algorithm.
	Algorithm motion.Algorithm
	// Rand is the shared random stream for trace generation, delay
	// randomization, and overshoot placement; nil selects the default.
	Rand motion.Rand
	// Defaults apply to every move; per-call options override them field
	// by field.
	Defaults motion.Options
	// OvershootThreshold enables overshoot for moves longer than this many
	// pixels: the cursor first lands past the target, then corrects with a
	// short second trace. Zero disables overshoot.
	OvershootThreshold float64
	// OvershootRadius is how far past the target the first leg aims.
	OvershootRadius float64
	Logger          *zap.Logger
}

// Cursor owns a mutable pointer position and replays generated traces
// through a transport. One logical actor: a single outstanding move at a
// time, with strictly sequential dispatch.
type Cursor struct {
	// moveMu serializes MoveTo calls; posMu guards the position snapshot
	// so Location never blocks on an in-flight move.
	moveMu sync.Mutex
	posMu  sync.Mutex
	pos    Position

	planner   *motion.Planner
	transport transport.Transport
	defaults  motion.Options
	rng       motion.Rand

	overshootThreshold float64
	overshootRadius    float64

	// sleep is swapped out by tests to observe pacing.
	sleep func(ctx context.Context, d time.Duration) error

	logger *zap.Logger
}

// New builds a cursor over the given transport.
func New(t transport.Transport, cfg Config) *Cursor {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = motion.DefaultRand
	}
	return &Cursor{
		pos:                Position{Point: cfg.Start},
		planner:            motion.NewPlanner(cfg.Algorithm, rng, logger),
		transport:          t,
		defaults:           cfg.Defaults,
		rng:                rng,
		overshootThreshold: cfg.OvershootThreshold,
		overshootRadius:    cfg.OvershootRadius,
		sleep:              sleepContext,
		logger:             logger,
	}
}

// Location returns the current position without waiting for an in-flight
// move; a move in progress is reported at its starting point until it
// commits.
func (c *Cursor) Location() Position {
	c.posMu.Lock()
	defer c.posMu.Unlock()
	return c.pos
}

// MoveTo generates a humanized trace from the current position to the
// target and dispatches it in order, one acknowledged event at a time. On
// full success the final point becomes the new position; a transport
// failure aborts the remainder and leaves the position at the last
// successfully dispatched point. Failures are surfaced, never retried:
// re-dispatching a motion sequence would double the physical movement.
func (c *Cursor) MoveTo(ctx context.Context, target motion.Target, opts motion.Options) error {
	c.moveMu.Lock()
	defer c.moveMu.Unlock()

	merged := mergeOptions(c.defaults, opts)
	moveID := uuid.NewString()
	start := c.Location().Point

	if !c.transport.Connected() {
		return fmt.Errorf("cursor: move %s: %w", moveID, transport.ErrDisconnected)
	}

	if c.overshootThreshold > 0 && start.Dist(target.Point) > c.overshootThreshold {
		over := c.overshootPoint(target.Point)
		c.logger.Debug("overshooting target",
			zap.String("move_id", moveID),
			zap.Float64("x", over.X),
			zap.Float64("y", over.Y),
		)
		if err := c.runLeg(ctx, moveID, start, motion.PointTarget(over), merged); err != nil {
			return err
		}
		start = c.Location().Point
	}

	return c.runLeg(ctx, moveID, start, target, merged)
}

// runLeg plans and dispatches one trace from start to target.
func (c *Cursor) runLeg(ctx context.Context, moveID string, start geometry.Vector, target motion.Target, opts motion.Options) error {
	trace, err := c.planner.Plan(start, target, opts)
	if err != nil {
		return fmt.Errorf("cursor: move %s: %w", moveID, err)
	}

	for i, point := range trace.Points {
		// Pacing applies between dispatches, never before the first.
		if i > 0 && opts.MoveDelay > 0 {
			if err := c.sleep(ctx, c.stepDelay(opts)); err != nil {
				c.commit(trace, i-1)
				return fmt.Errorf("cursor: move %s interrupted: %w", moveID, err)
			}
		}

		ev := transport.PointerEvent{X: point.X, Y: point.Y}
		if trace.Timestamps != nil {
			ev.Timestamp = trace.Timestamps[i]
			ev.Timed = true
		}

		if err := c.transport.DispatchMove(ctx, ev); err != nil {
			if i > 0 {
				c.commit(trace, i-1)
			}
			c.logger.Warn("move aborted",
				zap.String("move_id", moveID),
				zap.Int("dispatched", i),
				zap.Int("steps", trace.Metrics.Steps),
				zap.Error(err),
			)
			return fmt.Errorf("cursor: move %s step %d/%d: %w", moveID, i+1, trace.Metrics.Steps, err)
		}
	}

	c.commit(trace, len(trace.Points)-1)
	c.logger.Debug("move complete",
		zap.String("move_id", moveID),
		zap.String("algorithm", trace.Algorithm),
		zap.Int("steps", trace.Metrics.Steps),
	)
	return nil
}

// commit replaces the position with the trace point at index i.
func (c *Cursor) commit(trace *motion.Trace, i int) {
	pos := Position{Point: trace.Points[i]}
	if trace.Timestamps != nil {
		pos.Timestamp = trace.Timestamps[i]
		pos.Timed = true
	}
	c.posMu.Lock()
	c.pos = pos
	c.posMu.Unlock()
}

// stepDelay resolves the inter-step wait for one dispatch.
func (c *Cursor) stepDelay(opts motion.Options) time.Duration {
	if opts.RandomizeMoveDelay {
		return time.Duration(c.rng.Float64() * float64(opts.MoveDelay))
	}
	return opts.MoveDelay
}

// overshootPoint aims past the target by the configured radius in a random
// direction.
func (c *Cursor) overshootPoint(target geometry.Vector) geometry.Vector {
	angle := c.rng.Float64() * 2 * math.Pi
	offset := geometry.Vector{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(c.overshootRadius)
	return target.Add(offset).ClampPositive()
}

// mergeOptions layers per-call options over configured defaults. Unset
// (zero-valued) call fields inherit.
func mergeOptions(defaults, call motion.Options) motion.Options {
	out := defaults
	if call.Spread != 0 {
		out.Spread = call.Spread
	}
	if call.MoveSpeed != 0 {
		out.MoveSpeed = call.MoveSpeed
	}
	if call.UseTimestamps {
		out.UseTimestamps = true
	}
	if call.MoveDelay != 0 {
		out.MoveDelay = call.MoveDelay
	}
	if call.RandomizeMoveDelay {
		out.RandomizeMoveDelay = true
	}
	return out
}

// sleepContext waits for the duration, respecting cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
