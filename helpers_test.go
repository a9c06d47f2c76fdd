package parallel

import (
	"math"
	"testing"
)

const eps = 1e-9

func vx(id VertexID, x, y float64) Vertex {
	return Vertex{ID: id, Pos: Pt(x, y)}
}

func way(id WayID, vs ...Vertex) Way {
	return Way{ID: id, Vertices: vs}
}

// straightChain is a single way (0,0)-(10,0)-(20,0).
func straightChain() SourceChain {
	return SourceChain{Ways: []Way{
		way(1, vx(1, 0, 0), vx(2, 10, 0), vx(3, 20, 0)),
	}}
}

// lChain is A=(0,0)-(10,0) and B=(10,0)-(10,10) sharing (10,0).
func lChain() SourceChain {
	corner := vx(2, 10, 0)
	return SourceChain{Ways: []Way{
		way(1, vx(1, 0, 0), corner),
		way(2, corner, vx(3, 10, 10)),
	}}
}

// squareChain is the counter-clockwise unit square as four ways.
func squareChain() SourceChain {
	a, b, c, d := vx(1, 0, 0), vx(2, 1, 0), vx(3, 1, 1), vx(4, 0, 1)
	return SourceChain{Ways: []Way{
		way(1, a, b),
		way(2, b, c),
		way(3, c, d),
		way(4, d, a),
	}}
}

func assertPoints(t *testing.T, got, want []Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points %v, want %d points %v", len(got), got, len(want), want)
	}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// sources maps the path order to source vertex IDs.
func sources(c *Copy, p *Path) []VertexID {
	ids := make([]VertexID, 0, p.Len())
	for _, n := range p.Nodes() {
		ids = append(ids, c.Nodes[n].Source)
	}
	return ids
}

// precedes reports whether b directly follows a somewhere in order.
func precedes(order []VertexID, a, b VertexID) bool {
	for i := 0; i+1 < len(order); i++ {
		if order[i] == a && order[i+1] == b {
			return true
		}
	}
	return false
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func near(p, q Point) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

func nearVec(v, w Vec2) bool {
	return math.Abs(v.X-w.X) < eps && math.Abs(v.Y-w.Y) < eps
}

func v2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func dot(v, w Vec2) float64   { return v.X*w.X + v.Y*w.Y }
func cross(v, w Vec2) float64 { return v.X*w.Y - v.Y*w.X }
