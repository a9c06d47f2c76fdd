package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ParallelTolerance is the largest sine of the angle between two lines
// that are still treated as parallel.
const ParallelTolerance = 1e-3

// Parallel reports whether line p1p2 and line p3p4 are parallel (or
// anti-parallel) within ParallelTolerance. A degenerate line, whose two
// points coincide, is parallel to everything.
func Parallel(p1, p2, p3, p4 r2.Vec) bool {
	u, v := r2.Sub(p2, p1), r2.Sub(p4, p3)
	lu, lv := r2.Norm(u), r2.Norm(v)
	if lu == 0 || lv == 0 {
		return true
	}
	return math.Abs(r2.Cross(u, v))/(lu*lv) < ParallelTolerance
}

// Intersection returns the intersection point of line p1p2 and line p3p4.
// ok is false when the lines are exactly parallel.
func Intersection(p1, p2, p3, p4 r2.Vec) (pt r2.Vec, ok bool) {
	u, v := r2.Sub(p2, p1), r2.Sub(p4, p3)
	den := r2.Cross(u, v)
	if den == 0 {
		return r2.Vec{}, false
	}
	t := r2.Cross(r2.Sub(p3, p1), v) / den
	return r2.Add(p1, r2.Scale(t, u)), true
}

// ClosestPoint returns the point on line ab closest to p. For a
// zero-length line it returns a.
func ClosestPoint(a, b, p r2.Vec) r2.Vec {
	l := r2.Sub(b, a)
	n2 := r2.Norm2(l)
	if n2 == 0 {
		return a
	}
	t := r2.Dot(r2.Sub(p, a), l) / n2
	return r2.Add(a, r2.Scale(t, l))
}

// RightOf reports whether p lies strictly to the right of the directed
// line from a to b, with the y axis pointing up.
func RightOf(a, b, p r2.Vec) bool {
	return r2.Cross(r2.Sub(b, a), r2.Sub(p, a)) < 0
}
