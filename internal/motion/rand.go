package motion

import "math/rand"

// Rand is the source of pseudo-randomness threaded through every movement
// request. It is a single shared stream per planner, not per call, so
// callers that need reproducible traces substitute a seeded *rand.Rand
// (which satisfies the interface) or their own implementation.
type Rand interface {
	Float64() float64
}

// systemRand draws from the math/rand global source, which serializes its
// own access.
type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }

// DefaultRand is the fallback stream used when none is injected.
var DefaultRand Rand = systemRand{}

// randRange scales a draw into [min, max).
func randRange(r Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}
