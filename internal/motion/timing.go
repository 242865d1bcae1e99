// internal/motion/timing.go
package motion

import (
	"math"

	"github.com/xkilldash9x/humancursor/internal/geometry"
)

// synthesizeTimestamps assigns a wall-clock timeline to a sampled trace.
// The first point gets startMs; every later point adds the time needed to
// traverse its local curve window at the given speed factor. Elapsed time
// is never negative, so the sequence is non-decreasing by construction.
func synthesizeTimestamps(points []geometry.Vector, speedFactor float64, startMs int64) []int64 {
	n := len(points)
	timestamps := make([]int64, n)
	timestamps[0] = startMs

	for i := 1; i < n; i++ {
		// Local 4-point window around the segment: two real neighbors on
		// each side where they exist, virtual points extrapolated past the
		// trace ends otherwise.
		p1, p2 := points[i-1], points[i]
		p0 := geometry.Extrapolate(points[0], points[1])
		if i >= 2 {
			p0 = points[i-2]
		}
		p3 := geometry.Extrapolate(points[n-1], points[n-2])
		if i <= n-2 {
			p3 = points[i+1]
		}

		timestamps[i] = timestamps[i-1] + timeToMove(p0, p1, p2, p3, n, speedFactor)
	}

	return timestamps
}

// timeToMove integrates curve speed over one window with a trapezoidal rule
// and converts the path length to elapsed milliseconds.
//
// The first term samples at t*dt, not t. Recorded traces depend on this
// exact rule; a symmetric trapezoid shifts every timestamp.
func timeToMove(p0, p1, p2, p3 geometry.Vector, samples int, speedFactor float64) int64 {
	var total float64
	dt := 1.0 / float64(samples)
	for t := 0.0; t < 1.0; t += dt {
		v1 := geometry.CurveSpeed(t*dt, p0, p1, p2, p3)
		v2 := geometry.CurveSpeed(t, p0, p1, p2, p3)
		total += (v1 + v2) * dt / 2
	}
	return int64(math.Round(total / speedFactor))
}
