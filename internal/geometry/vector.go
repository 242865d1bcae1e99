// internal/geometry/vector.go
package geometry

import "math"

// Vector represents a point or displacement in 2D screen space.
type Vector struct {
	X, Y float64
}

// Add returns the vector sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the vector difference of v and other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector v scaled by the scalar factor.
func (v Vector) Mul(scalar float64) Vector {
	return Vector{X: v.X * scalar, Y: v.Y * scalar}
}

// MagSq calculates the squared magnitude of the vector.
func (v Vector) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Mag calculates the magnitude (length) of the vector.
func (v Vector) Mag() float64 {
	// Use math.Hypot for numerical stability.
	return math.Hypot(v.X, v.Y)
}

// Dist calculates the Euclidean distance between v and other (treated as points).
func (v Vector) Dist(other Vector) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// Normalize returns a unit vector in the same direction as v.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	mag := v.Mag()
	if mag < 1e-9 {
		return Vector{}
	}
	return v.Mul(1.0 / mag)
}

// WithMag returns a vector in the direction of v with the given magnitude.
func (v Vector) WithMag(mag float64) Vector {
	return v.Normalize().Mul(mag)
}

// Perp returns the vector rotated a quarter turn, used to push Bezier
// anchors off the chord of a movement.
func (v Vector) Perp() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// ClampPositive clamps both coordinates to be >= 0. Cursor positions are
// screen coordinates and never leave the visible quadrant.
func (v Vector) ClampPositive() Vector {
	return Vector{X: math.Max(0, v.X), Y: math.Max(0, v.Y)}
}

// IsFinite reports whether both coordinates are real numbers.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Extrapolate continues the ray from a through b by the same displacement,
// returning the point past b. The trajectory timer uses it to manufacture
// virtual control points beyond either end of a sampled trace.
func Extrapolate(a, b Vector) Vector {
	return b.Add(b.Sub(a))
}
