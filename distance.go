package parallel

import (
	"math"

	"github.com/gogpu/gg-parallel/internal/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// SignedDistance returns the distance from pointer to the line through ref
// and the foot of the perpendicular on that line. The distance is negative
// when pointer lies to the right of the direction of ref, so that it can be
// passed to ChangeOffset as is.
func SignedDistance(ref Segment, pointer Point) (d float64, foot Point) {
	a, b, p := r2.Vec(ref.A), r2.Vec(ref.B), r2.Vec(pointer)
	foot = Point(geom.ClosestPoint(a, b, p))
	d = pointer.Distance(foot)
	if geom.RightOf(a, b, p) {
		d = -d
	}
	return d, foot
}

// Snap snaps the magnitude of d to a whole unit when it is closer than
// threshold, and to the nearest half unit otherwise. The sign of d is kept.
func Snap(d, threshold float64) float64 {
	m := math.Abs(d)
	whole := math.Round(m)
	switch {
	case math.Abs(whole-m) < threshold:
		m = whole
	case whole > m:
		m = whole - 0.5
	case whole < m:
		m = whole + 0.5
	}
	return math.Copysign(m, d)
}
