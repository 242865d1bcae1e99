// internal/geometry/bezier.go
package geometry

import "math"

// lengthSegments is the resolution of the polyline arc-length approximation.
const lengthSegments = 100

// CubicBezier is a parametric curve defined by four control points. P0 and
// P3 lie on the path; P1 and P2 shape it without being visited.
type CubicBezier struct {
	P0, P1, P2, P3 Vector
}

// Point evaluates the curve at parameter t in [0, 1] using the Bernstein form.
func (c CubicBezier) Point(t float64) Vector {
	omt := 1.0 - t
	omt2 := omt * omt
	t2 := t * t

	a := omt2 * omt
	b := 3 * omt2 * t
	cc := 3 * omt * t2
	d := t2 * t

	return Vector{
		X: a*c.P0.X + b*c.P1.X + cc*c.P2.X + d*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + cc*c.P2.Y + d*c.P3.Y,
	}
}

// Length approximates the arc length by summing a fixed-resolution polyline.
func (c CubicBezier) Length() float64 {
	var total float64
	prev := c.P0
	for i := 1; i <= lengthSegments; i++ {
		cur := c.Point(float64(i) / lengthSegments)
		total += prev.Dist(cur)
		prev = cur
	}
	return total
}

// Sample returns steps+1 evenly-parameterized points on the curve,
// including both endpoints. steps must be >= 1.
func (c CubicBezier) Sample(steps int) []Vector {
	points := make([]Vector, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, c.Point(float64(i)/float64(steps)))
	}
	return points
}

// CurveSpeed returns the magnitude of the first derivative at parameter t of
// the cubic curve spanned by the four given control points. It accepts an
// arbitrary 4-point window rather than a CubicBezier so the trajectory timer
// can integrate speed over local windows of an already-sampled trace.
func CurveSpeed(t float64, p0, p1, p2, p3 Vector) float64 {
	omt := 1.0 - t
	dx := 3*omt*omt*(p1.X-p0.X) + 6*omt*t*(p2.X-p1.X) + 3*t*t*(p3.X-p2.X)
	dy := 3*omt*omt*(p1.Y-p0.Y) + 6*omt*t*(p2.Y-p1.Y) + 3*t*t*(p3.Y-p2.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
