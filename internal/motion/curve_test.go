package motion

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/humancursor/internal/geometry"
)

// cyclicRand replays a fixed sequence of draws, wrapping around when
// exhausted, so trace generation is fully deterministic.
type cyclicRand struct {
	draws []float64
	i     int
}

func (r *cyclicRand) Float64() float64 {
	v := r.draws[r.i%len(r.draws)]
	r.i++
	return v
}

const fixedClockMs = 1700000000000

// newTestCurve pins the algorithm's wall clock so timed traces are
// reproducible.
func newTestCurve() *Curve {
	c := NewCurve()
	c.now = func() time.Time { return time.UnixMilli(fixedClockMs) }
	return c
}

func TestGenerateKnownScenario(t *testing.T) {
	algo := newTestCurve()
	trace, err := algo.Generate(Request{
		Start:   geometry.Vector{X: 12, Y: 24},
		Target:  PointTarget(geometry.Vector{X: 160, Y: 96}),
		Options: Options{MoveSpeed: 90, Spread: 30},
		Rand:    &cyclicRand{draws: []float64{0.1, 0.2, 0.3, 0.4, 0.5}},
	})
	require.NoError(t, err)

	require.Len(t, trace.Points, 28)
	assert.Equal(t, geometry.Vector{X: 12, Y: 24}, trace.Points[0])
	assert.InDelta(t, 160, trace.Points[27].X, 1e-9)
	assert.InDelta(t, 96, trace.Points[27].Y, 1e-9)

	assert.Equal(t, 28, trace.Metrics.Steps)
	assert.InDelta(t, geometry.Vector{X: 12, Y: 24}.Dist(geometry.Vector{X: 160, Y: 96}), trace.Metrics.Distance, 1e-9)
	assert.Equal(t, 100.0, trace.Metrics.Width)
	assert.Nil(t, trace.Metrics.Duration)
	assert.Nil(t, trace.Timestamps)
	assert.Equal(t, "bezier", trace.Algorithm)
}

func TestGenerateKnownScenarioWithTimestamps(t *testing.T) {
	algo := newTestCurve()
	trace, err := algo.Generate(Request{
		Start:   geometry.Vector{X: 12, Y: 24},
		Target:  PointTarget(geometry.Vector{X: 160, Y: 96}),
		Options: Options{Spread: 30, UseTimestamps: true},
		Rand:    &cyclicRand{draws: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}},
	})
	require.NoError(t, err)

	require.Len(t, trace.Points, 52)
	require.Len(t, trace.Timestamps, 52)

	assert.EqualValues(t, fixedClockMs, trace.Timestamps[0])
	for i := 1; i < len(trace.Timestamps); i++ {
		assert.GreaterOrEqual(t, trace.Timestamps[i], trace.Timestamps[i-1], "timestamp %d regressed", i)
	}

	require.NotNil(t, trace.Metrics.Duration)
	assert.EqualValues(t, 592, *trace.Metrics.Duration)
	assert.EqualValues(t, trace.Timestamps[51]-trace.Timestamps[0], *trace.Metrics.Duration)
}

func TestGenerateDegenerateMove(t *testing.T) {
	algo := newTestCurve()
	at := geometry.Vector{X: 50, Y: 50}
	trace, err := algo.Generate(Request{
		Start:  at,
		Target: PointTarget(at),
		Rand:   &cyclicRand{draws: []float64{0.0}},
	})
	require.NoError(t, err)

	require.NotEmpty(t, trace.Points)
	assert.Equal(t, at, trace.Points[0])
	assert.Equal(t, at, trace.Points[len(trace.Points)-1])
	assert.InDelta(t, 0, trace.Metrics.Distance, 1e-9)
	assert.Equal(t, len(trace.Points), trace.Metrics.Steps)
}

func TestGenerateClampsNegativeCoordinates(t *testing.T) {
	algo := newTestCurve()
	trace, err := algo.Generate(Request{
		Start:   geometry.Vector{X: -40, Y: -10},
		Target:  PointTarget(geometry.Vector{X: 100, Y: 80}),
		Options: Options{MoveSpeed: 50, Spread: 30},
		Rand:    &cyclicRand{draws: []float64{0.9, 0.1, 0.9, 0.8, 0.2}},
	})
	require.NoError(t, err)

	for i, p := range trace.Points {
		assert.GreaterOrEqual(t, p.X, 0.0, "point %d", i)
		assert.GreaterOrEqual(t, p.Y, 0.0, "point %d", i)
	}
	last := trace.Points[len(trace.Points)-1]
	assert.InDelta(t, 100, last.X, 1e-9)
	assert.InDelta(t, 80, last.Y, 1e-9)
}

// stepsFor generates a trace toward a region of the given width centered on
// the destination and reports its density.
func stepsFor(t *testing.T, dist, width float64) int {
	t.Helper()
	algo := newTestCurve()
	trace, err := algo.Generate(Request{
		Start:   geometry.Vector{X: 0, Y: 0},
		Target:  RegionTarget(dist-width/2, -15, width, 30),
		Options: Options{MoveSpeed: 80, Spread: 30},
		Rand:    &cyclicRand{draws: []float64{0.3, 0.4, 0.5, 0.6, 0.7}},
	})
	require.NoError(t, err)
	return trace.Metrics.Steps
}

func TestStepCountTracksDifficulty(t *testing.T) {
	// Narrower target at equal distance means a harder move, which must
	// densify the trace.
	assert.Greater(t, stepsFor(t, 300, 20), stepsFor(t, 300, 120))

	// Greater distance at equal width likewise.
	assert.Greater(t, stepsFor(t, 600, 20), stepsFor(t, 150, 20))
}

func TestSlowerSpeedDensifiesTrace(t *testing.T) {
	algo := newTestCurve()
	gen := func(moveSpeed float64) int {
		trace, err := algo.Generate(Request{
			Start:   geometry.Vector{X: 0, Y: 0},
			Target:  PointTarget(geometry.Vector{X: 300, Y: 200}),
			Options: Options{MoveSpeed: moveSpeed, Spread: 30},
			Rand:    &cyclicRand{draws: []float64{0.3, 0.4, 0.5, 0.6, 0.7}},
		})
		require.NoError(t, err)
		return trace.Metrics.Steps
	}
	assert.Greater(t, gen(20), gen(200))
}

func TestGenerateRejectsMalformedTargets(t *testing.T) {
	algo := newTestCurve()
	nan := geometry.Vector{X: math.NaN(), Y: 10}

	_, err := algo.Generate(Request{Start: geometry.Vector{}, Target: PointTarget(nan)})
	assert.ErrorIs(t, err, ErrInvalidDestination)

	_, err = algo.Generate(Request{Start: nan, Target: PointTarget(geometry.Vector{X: 1, Y: 1})})
	assert.ErrorIs(t, err, ErrInvalidDestination)

	_, err = algo.Generate(Request{
		Start:  geometry.Vector{},
		Target: Target{Point: geometry.Vector{X: 10, Y: 10}, Width: -5},
	})
	assert.ErrorIs(t, err, ErrInvalidDestination)
}

func TestRegionWidthFeedsMetrics(t *testing.T) {
	algo := newTestCurve()
	trace, err := algo.Generate(Request{
		Start:   geometry.Vector{X: 0, Y: 0},
		Target:  RegionTarget(200, 100, 80, 40),
		Options: Options{MoveSpeed: 60},
		Rand:    &cyclicRand{draws: []float64{0.5}},
	})
	require.NoError(t, err)

	assert.Equal(t, 80.0, trace.Metrics.Width)
	// Region targets resolve to the region center.
	last := trace.Points[len(trace.Points)-1]
	assert.InDelta(t, 240, last.X, 1e-9)
	assert.InDelta(t, 120, last.Y, 1e-9)
}
