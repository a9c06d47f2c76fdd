package parallel

import (
	"github.com/gogpu/gg-parallel/internal/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Offset returns the vertices of the path pts moved d units along normals,
// the per-segment normals of pts. Every interior vertex is the intersection
// of its two neighbouring segments translated by d; when those are parallel
// the translated end of the incoming segment is used instead. Open paths
// move their end vertices along the single adjacent normal. Closed paths,
// where pts[0] and pts[len-1] are the same vertex, join the last segment
// with the first and write the result to both ends.
//
// Offset never modifies pts or normals, so repeated calls with the same d
// return the same positions.
func Offset(pts []Point, normals []Vec2, closed bool, d float64) []Point {
	n := len(pts)
	out := make([]Point, n)
	if n < 2 || len(normals) != n-1 {
		copy(out, pts)
		return out
	}

	for i := 1; i < n-1; i++ {
		out[i] = join(pts[i-1], pts[i], normals[i-1], pts[i], pts[i+1], normals[i], d)
	}
	if closed {
		out[0] = join(pts[n-2], pts[n-1], normals[n-2], pts[0], pts[1], normals[0], d)
		out[n-1] = out[0]
	} else {
		out[0] = pts[0].Add(normals[0].Mul(d))
		out[n-1] = pts[n-1].Add(normals[n-2].Mul(d))
	}
	return out
}

// join translates segment a0a1 along na and segment b0b1 along nb by d and
// returns the joint of the two translated lines.
func join(a0, a1 Point, na Vec2, b0, b1 Point, nb Vec2, d float64) Point {
	ta, tb := na.Mul(d), nb.Mul(d)
	pa0, pa1 := a0.Add(ta), a1.Add(ta)
	pb0, pb1 := b0.Add(tb), b1.Add(tb)

	if geom.Parallel(r2.Vec(pa0), r2.Vec(pa1), r2.Vec(pb0), r2.Vec(pb1)) {
		return pa1
	}
	pt, ok := geom.Intersection(r2.Vec(pa0), r2.Vec(pa1), r2.Vec(pb0), r2.Vec(pb1))
	if !ok {
		return pa1
	}
	return Point(pt)
}
