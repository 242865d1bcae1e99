// internal/motion/curve.go
package motion

import (
	"fmt"
	"math"
	"time"

	"github.com/xkilldash9x/humancursor/internal/geometry"
)

const (
	// defaultTargetWidth stands in for the Fitts target width when the
	// destination carries no region geometry.
	defaultTargetWidth = 100.0
	// baseSteps is the step budget scaled by the speed factor.
	baseSteps = 25.0
	// lengthDamping counteracts the arc-length over-count caused by strong
	// curvature.
	lengthDamping = 0.8
	// minSteps is the resolution floor of a sampled trace.
	minSteps = 10
	// Control point spread bounds when no override is given.
	minSpread = 2.0
	maxSpread = 200.0
	// Fitts's Law coefficients: mt = fittsOffset + fittsSlope * id.
	fittsOffset = 0.0
	fittsSlope  = 2.0
)

// Curve is the default Algorithm: a cubic Bezier from start to destination
// with two randomized interior control points, sampled at a density driven
// by a Fitts'-Law difficulty index, optionally timed by numerical
// integration of curve speed.
type Curve struct {
	// now is the wall clock used for the first timestamp of a timed trace.
	// Tests substitute a fixed clock.
	now func() time.Time
}

// NewCurve returns the default curve-based movement algorithm.
func NewCurve() *Curve {
	return &Curve{now: time.Now}
}

func (c *Curve) Name() string { return "bezier" }

// Generate produces one trace for the request. The random stream is
// consumed in a fixed order (curve anchors, then speed factors), so a
// seeded stream reproduces a trace exactly.
func (c *Curve) Generate(req Request) (*Trace, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	rng := req.Rand
	if rng == nil {
		rng = DefaultRand
	}

	start, end := req.Start, req.Target.Point

	width := req.Target.Width
	if width == 0 {
		width = defaultTargetWidth
	}

	spread := req.Options.Spread
	if spread <= 0 {
		spread = clamp(start.Dist(end), minSpread, maxSpread)
	}

	curve := buildCurve(start, end, spread, rng)
	damped := curve.Length() * lengthDamping

	// Explicit move speed pins the speed factor; otherwise it is a draw in
	// [0, 1). Slower factors and harder targets both densify the trace.
	var speed float64
	if req.Options.MoveSpeed > 0 {
		speed = baseSteps / req.Options.MoveSpeed
	} else {
		speed = rng.Float64()
	}

	difficulty := fittsOffset + fittsSlope*math.Log2(damped/width+1)
	steps := int(math.Ceil((math.Log2(difficulty+1) + speed*baseSteps) * 3))
	if steps < minSteps {
		steps = minSteps
	}

	points := curve.Sample(steps)
	for i := range points {
		points[i] = points[i].ClampPositive()
	}

	trace := &Trace{
		Algorithm: c.Name(),
		Points:    points,
		Metrics: Metrics{
			Steps:    len(points),
			Distance: start.Dist(end),
			Width:    width,
		},
	}

	if req.Options.UseTimestamps {
		tsSpeed := speed
		if req.Options.MoveSpeed <= 0 {
			tsSpeed = randRange(rng, 0.5, 1)
		}
		trace.Timestamps = synthesizeTimestamps(points, tsSpeed, c.now().UnixMilli())
		duration := trace.Timestamps[len(trace.Timestamps)-1] - trace.Timestamps[0]
		trace.Metrics.Duration = &duration
	}

	return trace, nil
}

// buildCurve places two anchors around the chord: each sits at a random
// position along it, pushed off perpendicularly by the spread scaled into
// [0.5, 1), both on the same randomly chosen side. Anchors are ordered by X
// so the curve bows once rather than weaving.
func buildCurve(start, end geometry.Vector, spread float64, rng Rand) geometry.CubicBezier {
	side := -1.0
	if math.Round(rng.Float64()) == 1 {
		side = 1.0
	}

	anchor := func() geometry.Vector {
		mid := start.Add(end.Sub(start).Mul(rng.Float64()))
		normal := mid.Sub(start).Perp().WithMag(spread)
		return mid.Add(normal.Mul(side).Mul(randRange(rng, 0.5, 1)))
	}

	a1, a2 := anchor(), anchor()
	if a2.X < a1.X {
		a1, a2 = a2, a1
	}
	return geometry.CubicBezier{P0: start, P1: a1, P2: a2, P3: end}
}

func validateRequest(req Request) error {
	if !req.Start.IsFinite() {
		return fmt.Errorf("%w: start %+v", ErrInvalidDestination, req.Start)
	}
	if !req.Target.Point.IsFinite() {
		return fmt.Errorf("%w: point %+v", ErrInvalidDestination, req.Target.Point)
	}
	if req.Target.Width < 0 || req.Target.Height < 0 ||
		math.IsNaN(req.Target.Width) || math.IsNaN(req.Target.Height) {
		return fmt.Errorf("%w: region %gx%g", ErrInvalidDestination, req.Target.Width, req.Target.Height)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
