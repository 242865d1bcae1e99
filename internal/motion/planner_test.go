package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/humancursor/internal/geometry"
)

// scriptedAlgorithm returns a canned trace, recording the request it saw.
type scriptedAlgorithm struct {
	trace   *Trace
	err     error
	lastReq Request
}

func (s *scriptedAlgorithm) Name() string { return "scripted" }

func (s *scriptedAlgorithm) Generate(req Request) (*Trace, error) {
	s.lastReq = req
	return s.trace, s.err
}

func validTraceFor(start, end geometry.Vector) *Trace {
	points := []geometry.Vector{start, start.Add(end.Sub(start).Mul(0.5)), end}
	return &Trace{
		Algorithm: "scripted",
		Points:    points,
		Metrics:   Metrics{Steps: len(points), Distance: start.Dist(end), Width: 100},
	}
}

func TestPlanDelegatesAndThreadsRand(t *testing.T) {
	start := geometry.Vector{X: 1, Y: 2}
	end := geometry.Vector{X: 100, Y: 50}
	algo := &scriptedAlgorithm{trace: validTraceFor(start, end)}
	rng := &cyclicRand{draws: []float64{0.5}}

	p := NewPlanner(algo, rng, zap.NewNop())
	trace, err := p.Plan(start, PointTarget(end), Options{Spread: 42, MoveSpeed: 7})
	require.NoError(t, err)
	assert.Same(t, algo.trace, trace)

	// The request carries the planner's stream and the untouched options.
	assert.Equal(t, rng, algo.lastReq.Rand)
	assert.Equal(t, 42.0, algo.lastReq.Options.Spread)
	assert.Equal(t, 7.0, algo.lastReq.Options.MoveSpeed)
	assert.False(t, algo.lastReq.Options.UseTimestamps)
	assert.Equal(t, start, algo.lastReq.Start)
}

func TestPlanRejectsEmptyTrace(t *testing.T) {
	algo := &scriptedAlgorithm{trace: &Trace{Algorithm: "scripted"}}
	p := NewPlanner(algo, nil, nil)

	_, err := p.Plan(geometry.Vector{}, PointTarget(geometry.Vector{X: 10, Y: 10}), Options{})
	assert.ErrorIs(t, err, ErrAlgorithmContract)
}

func TestPlanRejectsEndpointMismatch(t *testing.T) {
	start := geometry.Vector{X: 0, Y: 0}
	end := geometry.Vector{X: 10, Y: 10}

	// Trace that ends somewhere else entirely.
	bad := validTraceFor(start, geometry.Vector{X: 99, Y: 99})
	p := NewPlanner(&scriptedAlgorithm{trace: bad}, nil, nil)
	_, err := p.Plan(start, PointTarget(end), Options{})
	assert.ErrorIs(t, err, ErrAlgorithmContract)

	// Trace that starts somewhere else.
	bad = validTraceFor(geometry.Vector{X: 5, Y: 5}, end)
	p = NewPlanner(&scriptedAlgorithm{trace: bad}, nil, nil)
	_, err = p.Plan(start, PointTarget(end), Options{})
	assert.ErrorIs(t, err, ErrAlgorithmContract)
}

func TestPlanRejectsInconsistentMetrics(t *testing.T) {
	start := geometry.Vector{X: 0, Y: 0}
	end := geometry.Vector{X: 10, Y: 10}
	bad := validTraceFor(start, end)
	bad.Metrics.Steps = 99

	p := NewPlanner(&scriptedAlgorithm{trace: bad}, nil, nil)
	_, err := p.Plan(start, PointTarget(end), Options{})
	assert.ErrorIs(t, err, ErrAlgorithmContract)
}

func TestPlanRejectsTimestampLengthMismatch(t *testing.T) {
	start := geometry.Vector{X: 0, Y: 0}
	end := geometry.Vector{X: 10, Y: 10}
	bad := validTraceFor(start, end)
	bad.Timestamps = []int64{1}

	p := NewPlanner(&scriptedAlgorithm{trace: bad}, nil, nil)
	_, err := p.Plan(start, PointTarget(end), Options{})
	assert.ErrorIs(t, err, ErrAlgorithmContract)
}

func TestPlanSurfacesGenerationErrors(t *testing.T) {
	p := NewPlanner(NewCurve(), &cyclicRand{draws: []float64{0.5}}, nil)
	_, err := p.Plan(geometry.Vector{}, PointTarget(geometry.Vector{X: math.NaN(), Y: 1}), Options{})
	assert.ErrorIs(t, err, ErrInvalidDestination)
}

func TestSetAlgorithmSwapsStrategy(t *testing.T) {
	start := geometry.Vector{X: 0, Y: 0}
	end := geometry.Vector{X: 10, Y: 10}

	p := NewPlanner(NewCurve(), &cyclicRand{draws: []float64{0.5}}, nil)
	scripted := &scriptedAlgorithm{trace: validTraceFor(start, end)}
	p.SetAlgorithm(scripted)

	trace, err := p.Plan(start, PointTarget(end), Options{})
	require.NoError(t, err)
	assert.Equal(t, "scripted", trace.Algorithm)
}

func TestPlannerDefaults(t *testing.T) {
	// Nil collaborators resolve to the curve algorithm and shared stream.
	p := NewPlanner(nil, nil, nil)
	trace, err := p.Plan(geometry.Vector{X: 5, Y: 5}, PointTarget(geometry.Vector{X: 200, Y: 120}), Options{})
	require.NoError(t, err)
	assert.Equal(t, "bezier", trace.Algorithm)
	assert.NotEmpty(t, trace.Points)
}
