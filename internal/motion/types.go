// internal/motion/types.go
package motion

import (
	"time"

	"github.com/xkilldash9x/humancursor/internal/geometry"
)

// Target is the destination of a movement: either a bare point, or an
// on-screen rectangular region such as an element's bounding box. Region
// targets resolve to the region center, and their width feeds the
// difficulty heuristic that scales trace density.
type Target struct {
	// Point is the destination coordinate. For region targets it is the
	// region's center.
	Point geometry.Vector
	// Width and Height are the region dimensions; zero for point targets.
	Width  float64
	Height float64
}

// PointTarget wraps a bare coordinate as a movement destination.
func PointTarget(p geometry.Vector) Target {
	return Target{Point: p}
}

// RegionTarget builds a destination from a rectangle's top-left corner and
// dimensions.
func RegionTarget(x, y, width, height float64) Target {
	return Target{
		Point:  geometry.Vector{X: x + width/2, Y: y + height/2},
		Width:  width,
		Height: height,
	}
}

// Options tunes a single trace generation and its replay. The zero value of
// every field means "unset": the consumer falls back to its configured
// default, and per-call values override defaults field by field. A default
// that enables a boolean therefore cannot be switched back off per call.
type Options struct {
	// Spread overrides the randomization spread of the curve's control
	// points, in pixels. Unset derives it from the movement distance.
	Spread float64
	// MoveSpeed scales trace density and timing when positive. Unset draws
	// a speed factor from the random stream instead.
	MoveSpeed float64
	// UseTimestamps attaches a synthesized wall-clock timeline to the trace.
	UseTimestamps bool

	// MoveDelay paces the replay of a trace: the wait between consecutive
	// dispatches, never applied before the first. Consumed by the cursor
	// controller; algorithms ignore it.
	MoveDelay time.Duration
	// RandomizeMoveDelay scales each inter-step wait by a fresh draw.
	RandomizeMoveDelay bool
}

// Request is the immutable input of one algorithm invocation.
type Request struct {
	Start   geometry.Vector
	Target  Target
	Options Options
	// Rand is the stream used for control-point placement and speed
	// fallback. The planner threads its configured stream through here.
	Rand Rand
}

// Metrics describes a generated trace.
type Metrics struct {
	// Steps is the number of points in the trace.
	Steps int
	// Distance is the straight-line start-to-end distance, never the
	// curve's arc length.
	Distance float64
	// Width is the resolved target width the difficulty heuristic used.
	Width float64
	// Duration is the synthesized replay time in milliseconds, nil unless
	// timestamps were requested.
	Duration *int64
}

// Trace is the immutable result of one generation call: an ordered sequence
// of cursor positions, optionally timed.
type Trace struct {
	// Algorithm names the strategy that produced the trace.
	Algorithm string
	// Points holds the sampled positions in dispatch order.
	Points []geometry.Vector
	// Timestamps holds one unix-millisecond timestamp per point,
	// non-decreasing; nil unless requested.
	Timestamps []int64
	Metrics    Metrics
}
