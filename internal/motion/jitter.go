// internal/motion/jitter.go
package motion

import (
	"github.com/aquilax/go-perlin"

	"github.com/xkilldash9x/humancursor/internal/geometry"
)

// Standard Perlin parameters.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
	// perlinFrequency controls how fast the drift wanders along the trace.
	perlinFrequency = 0.8
)

// Jitter decorates another Algorithm with low-frequency Perlin drift,
// imitating the hand tremor of a real pointer. Endpoints, timestamps, and
// the non-negative clamp are preserved, so a jittered trace still satisfies
// the Algorithm contract.
type Jitter struct {
	inner     Algorithm
	amplitude float64
	noiseX    *perlin.Perlin
	noiseY    *perlin.Perlin
}

// NewJitter wraps inner (the default curve algorithm when nil) with drift
// of the given pixel amplitude. The seed fixes the noise field, not the
// trace: point placement still comes from the request's random stream.
func NewJitter(inner Algorithm, amplitude float64, seed int64) *Jitter {
	if inner == nil {
		inner = NewCurve()
	}
	return &Jitter{
		inner:     inner,
		amplitude: amplitude,
		noiseX:    perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
		noiseY:    perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed+1),
	}
}

func (j *Jitter) Name() string { return j.inner.Name() + "+jitter" }

func (j *Jitter) Generate(req Request) (*Trace, error) {
	trace, err := j.inner.Generate(req)
	if err != nil {
		return nil, err
	}
	if j.amplitude <= 0 || len(trace.Points) < 3 {
		return trace, nil
	}

	// Interior points only: the first must stay on the start and the last
	// on the destination.
	last := len(trace.Points) - 1
	for i := 1; i < last; i++ {
		t := float64(i) / float64(last) * perlinFrequency
		drift := geometry.Vector{
			X: j.noiseX.Noise1D(t) * j.amplitude,
			Y: j.noiseY.Noise1D(t) * j.amplitude,
		}
		trace.Points[i] = trace.Points[i].Add(drift).ClampPositive()
	}
	return trace, nil
}
