// internal/motion/planner.go
package motion

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/humancursor/internal/geometry"
)

// endpointTolerance absorbs the floating error of region-derived
// destinations when checking the trace endpoints.
const endpointTolerance = 1e-6

// Planner is the stateless facade in front of an Algorithm: it builds the
// request, threads the configured random stream through it, delegates, and
// rejects traces that break the Algorithm contract. Every call is a fresh
// generation; there are no retries and no caching.
type Planner struct {
	algo   Algorithm
	rng    Rand
	logger *zap.Logger
}

// NewPlanner builds a planner around the given algorithm. A nil algorithm
// selects the default curve algorithm, a nil rng the shared stream.
func NewPlanner(algo Algorithm, rng Rand, logger *zap.Logger) *Planner {
	if algo == nil {
		algo = NewCurve()
	}
	if rng == nil {
		rng = DefaultRand
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{algo: algo, rng: rng, logger: logger}
}

// SetAlgorithm swaps the generation strategy for subsequent calls.
func (p *Planner) SetAlgorithm(algo Algorithm) {
	if algo != nil {
		p.algo = algo
	}
}

// Plan generates one trace from start to target. Unset option fields keep
// their zero value; numeric overrides pass through untouched.
func (p *Planner) Plan(start geometry.Vector, target Target, opts Options) (*Trace, error) {
	req := Request{Start: start, Target: target, Options: opts, Rand: p.rng}

	trace, err := p.algo.Generate(req)
	if err != nil {
		return nil, err
	}
	if err := validateTrace(req, trace); err != nil {
		return nil, err
	}

	p.logger.Debug("trace generated",
		zap.String("algorithm", trace.Algorithm),
		zap.Int("steps", trace.Metrics.Steps),
		zap.Float64("distance", trace.Metrics.Distance),
	)
	return trace, nil
}

// validateTrace enforces the Algorithm contract on a returned trace.
func validateTrace(req Request, trace *Trace) error {
	if trace == nil || len(trace.Points) == 0 {
		return fmt.Errorf("%w: empty trace", ErrAlgorithmContract)
	}
	first := trace.Points[0]
	if first.Dist(req.Start.ClampPositive()) > endpointTolerance {
		return fmt.Errorf("%w: trace starts at %+v, requested %+v", ErrAlgorithmContract, first, req.Start)
	}
	last := trace.Points[len(trace.Points)-1]
	if last.Dist(req.Target.Point.ClampPositive()) > endpointTolerance {
		return fmt.Errorf("%w: trace ends at %+v, destination %+v", ErrAlgorithmContract, last, req.Target.Point)
	}
	if trace.Metrics.Steps != len(trace.Points) {
		return fmt.Errorf("%w: metrics report %d steps for %d points", ErrAlgorithmContract, trace.Metrics.Steps, len(trace.Points))
	}
	if trace.Timestamps != nil && len(trace.Timestamps) != len(trace.Points) {
		return fmt.Errorf("%w: %d timestamps for %d points", ErrAlgorithmContract, len(trace.Timestamps), len(trace.Points))
	}
	return nil
}
