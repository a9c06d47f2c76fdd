package parallel

import (
	"math"
	"testing"
)

func mustWays(t *testing.T, chain SourceChain) *Ways {
	t.Helper()
	w, err := NewWays(chain, false)
	if err != nil {
		t.Fatalf("NewWays() error = %v", err)
	}
	return w
}

func TestOffsetScenarios(t *testing.T) {
	tests := []struct {
		name  string
		chain SourceChain
		d     float64
		want  []Point
	}{
		{
			name:  "straight polyline",
			chain: straightChain(),
			d:     5,
			want:  []Point{Pt(0, 5), Pt(10, 5), Pt(20, 5)},
		},
		{
			name:  "L-shape to the left",
			chain: lChain(),
			d:     2,
			want:  []Point{Pt(0, 2), Pt(8, 2), Pt(8, 10)},
		},
		{
			name:  "L-shape to the right",
			chain: lChain(),
			d:     -2,
			want:  []Point{Pt(0, -2), Pt(12, -2), Pt(12, 10)},
		},
		{
			name:  "unit square outward",
			chain: squareChain(),
			d:     -0.25,
			want: []Point{
				Pt(-0.25, -0.25), Pt(1.25, -0.25), Pt(1.25, 1.25), Pt(-0.25, 1.25), Pt(-0.25, -0.25),
			},
		},
		{
			name:  "unit square inward",
			chain: squareChain(),
			d:     0.25,
			want: []Point{
				Pt(0.25, 0.25), Pt(0.75, 0.25), Pt(0.75, 0.75), Pt(0.25, 0.75), Pt(0.25, 0.25),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mustWays(t, tt.chain)
			assertPoints(t, w.ChangeOffset(tt.d), tt.want)
		})
	}
}

func TestOffsetZeroIsIdentity(t *testing.T) {
	for name, chain := range map[string]SourceChain{
		"straight": straightChain(),
		"L":        lChain(),
		"square":   squareChain(),
	} {
		t.Run(name, func(t *testing.T) {
			p := mustWays(t, chain).Path()
			assertPoints(t, p.Offset(0), p.Points())
		})
	}
}

func TestOffsetRepeatable(t *testing.T) {
	w := mustWays(t, lChain())

	first := w.ChangeOffset(3.3)
	for _, d := range []float64{-7, 1e6, 0.001, -3.3, 42} {
		w.ChangeOffset(d)
	}
	again := w.ChangeOffset(3.3)

	for i := range first {
		if first[i] != again[i] {
			t.Errorf("point %d drifted: %v != %v", i, first[i], again[i])
		}
	}
}

func TestOffsetClosedPathStaysClosed(t *testing.T) {
	// An irregular pentagon.
	a := vx(1, 0, 0)
	chain := SourceChain{Ways: []Way{
		way(1, a, vx(2, 4, -1), vx(3, 7, 2)),
		way(2, vx(3, 7, 2), vx(4, 3, 6), vx(5, -1, 3), a),
	}}
	p := mustWays(t, chain).Path()
	if !p.Closed() {
		t.Fatal("path should be closed")
	}

	for _, d := range []float64{-2.5, -0.1, 0, 0.3, 1.7} {
		got := p.Offset(d)
		if got[0] != got[len(got)-1] {
			t.Errorf("Offset(%v): first %v != last %v", d, got[0], got[len(got)-1])
		}
	}
}

func TestOffsetStraightLineExact(t *testing.T) {
	// Collinear vertices on a line that is not axis-aligned.
	dir := v2(3, 4).Mul(1.0 / 5)
	var vs []Vertex
	for i := 0; i < 5; i++ {
		s := float64(i * i)
		vs = append(vs, vx(VertexID(i+1), 1+dir.X*s, 2+dir.Y*s))
	}
	p := mustWays(t, SourceChain{Ways: []Way{way(1, vs...)}}).Path()
	base := p.Points()

	for _, d := range []float64{-4, 2.5} {
		got := p.Offset(d)
		for i := range got {
			if dist := got[i].Distance(base[i]); math.Abs(dist-math.Abs(d)) > eps {
				t.Errorf("d=%v: vertex %d moved %v, want %v", d, i, dist, math.Abs(d))
			}
			if along := dot(got[i].Sub(base[i]), dir); math.Abs(along) > eps {
				t.Errorf("d=%v: vertex %d moved %v along the line", d, i, along)
			}
		}
		for i := 2; i < len(got); i++ {
			if c := cross(got[1].Sub(got[0]), got[i].Sub(got[0])); math.Abs(c) > 1e-6 {
				t.Errorf("d=%v: vertex %d not collinear (cross %v)", d, i, c)
			}
		}
	}
}

func TestOffsetSignSymmetry(t *testing.T) {
	chain := SourceChain{Ways: []Way{way(1, vx(1, 0, 0), vx(2, 4, 3))}}
	p := mustWays(t, chain).Path()
	base := p.Points()

	pos, neg := p.Offset(1.5), p.Offset(-1.5)
	for i := range base {
		mid := Pt((pos[i].X+neg[i].X)/2, (pos[i].Y+neg[i].Y)/2)
		if !near(mid, base[i]) {
			t.Errorf("vertex %d: %v and %v are not mirrored across %v", i, pos[i], neg[i], base[i])
		}
	}
}

func TestOffsetNearParallelFallback(t *testing.T) {
	chain := SourceChain{Ways: []Way{
		way(1, vx(1, 0, 0), vx(2, 10, 0), vx(3, 20, 1e-6)),
	}}
	w := mustWays(t, chain)
	n := w.Path().Normals()[0]

	got := w.ChangeOffset(3)
	want := Pt(10, 0).Add(n.Mul(3))
	if !near(got[1], want) {
		t.Errorf("joint = %v, want translated end %v", got[1], want)
	}
	for i, pt := range got {
		if !finite(pt) {
			t.Errorf("vertex %d is not finite: %v", i, pt)
		}
	}
}

func TestOffsetSpikeUsesIncomingSegment(t *testing.T) {
	// Out and back along the x axis: the two segments are anti-parallel.
	chain := SourceChain{Ways: []Way{
		way(1, vx(1, 0, 0), vx(2, 10, 0), vx(3, 0, 0)),
	}}
	got := mustWays(t, chain).ChangeOffset(1)
	assertPoints(t, got, []Point{Pt(0, 1), Pt(10, 1), Pt(0, -1)})
}

func TestOffsetShortInput(t *testing.T) {
	pts := []Point{Pt(1, 2)}
	got := Offset(pts, nil, false, 5)
	assertPoints(t, got, pts)

	if got := Offset(nil, nil, false, 1); len(got) != 0 {
		t.Errorf("Offset(nil) = %v, want empty", got)
	}
}

func TestChangeOffsetMovesCopy(t *testing.T) {
	w := mustWays(t, lChain())
	w.ChangeOffset(2)

	lines := w.Copy().Polylines()
	assertPoints(t, lines[0], []Point{Pt(0, 2), Pt(8, 2)})
	assertPoints(t, lines[1], []Point{Pt(8, 2), Pt(8, 10)})
}
