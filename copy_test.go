package parallel

import "testing"

func taggedLChain() SourceChain {
	corner := Vertex{ID: 2, Pos: Pt(10, 0), Tags: Tags{"highway": "crossing"}}
	return SourceChain{Ways: []Way{
		{ID: 1, Vertices: []Vertex{vx(1, 0, 0), vx(11, 5, 1), corner}, Tags: Tags{"highway": "residential"}},
		{ID: 2, Vertices: []Vertex{corner, vx(3, 10, 10)}, Tags: Tags{"name": "Side Street"}},
	}}
}

func TestNewCopySharesEndpoints(t *testing.T) {
	c := NewCopy(taggedLChain(), false)

	if len(c.Nodes) != 4 {
		t.Fatalf("copy has %d nodes, want 4", len(c.Nodes))
	}
	if len(c.Ways) != 2 {
		t.Fatalf("copy has %d ways, want 2", len(c.Ways))
	}
	w0, w1 := c.Ways[0].Nodes, c.Ways[1].Nodes
	if w0[len(w0)-1] != w1[0] {
		t.Errorf("shared corner not shared in copy: %v and %v", w0, w1)
	}
	if c.Nodes[w0[1]].Source != 11 || c.Nodes[w0[1]].Pos != Pt(5, 1) {
		t.Errorf("interior node = %+v, want copy of vertex 11", c.Nodes[w0[1]])
	}
	if c.Ways[0].Source != 1 || c.Ways[1].Source != 2 {
		t.Errorf("way sources = %d, %d, want 1, 2", c.Ways[0].Source, c.Ways[1].Source)
	}
}

func TestNewCopyInteriorNeverShared(t *testing.T) {
	// Two ways that happen to pass through the same interior vertex ID.
	shared := vx(50, 5, 5)
	chain := SourceChain{Ways: []Way{
		way(1, vx(1, 0, 0), shared, vx(2, 10, 0)),
		way(2, vx(2, 10, 0), shared, vx(3, 20, 0)),
	}}
	c := NewCopy(chain, false)
	if c.Ways[0].Nodes[1] == c.Ways[1].Nodes[1] {
		t.Error("interior vertices must be copied one to one")
	}
}

func TestNewCopyTags(t *testing.T) {
	src := taggedLChain()

	plain := NewCopy(src, false)
	for i, n := range plain.Nodes {
		if n.Tags != nil {
			t.Errorf("node %d has tags %v without copyTags", i, n.Tags)
		}
	}
	for i, w := range plain.Ways {
		if w.Tags != nil {
			t.Errorf("way %d has tags %v without copyTags", i, w.Tags)
		}
	}

	tagged := NewCopy(src, true)
	corner := tagged.Ways[1].Nodes[0]
	if got := tagged.Nodes[corner].Tags["highway"]; got != "crossing" {
		t.Errorf("corner tag = %q, want crossing", got)
	}
	if got := tagged.Ways[0].Tags["highway"]; got != "residential" {
		t.Errorf("way tag = %q, want residential", got)
	}

	// The copy owns its tags.
	src.Ways[0].Tags["highway"] = "primary"
	src.Ways[1].Vertices[0].Tags["highway"] = "traffic_signals"
	if got := tagged.Ways[0].Tags["highway"]; got != "residential" {
		t.Errorf("way tag changed with the source: %q", got)
	}
	if got := tagged.Nodes[corner].Tags["highway"]; got != "crossing" {
		t.Errorf("vertex tag changed with the source: %q", got)
	}
}

func TestNewCopyLeavesSourceAlone(t *testing.T) {
	src := lChain()
	w := mustWays(t, src)
	w.ChangeOffset(4)

	assertPoints(t, []Point{src.Ways[0].Vertices[0].Pos, src.Ways[0].Vertices[1].Pos, src.Ways[1].Vertices[1].Pos},
		[]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)})
}

func TestNewCopyShortWays(t *testing.T) {
	c := NewCopy(SourceChain{Ways: []Way{{ID: 1}, way(2, vx(1, 0, 0))}}, false)
	if len(c.Ways[0].Nodes) != 0 {
		t.Errorf("empty way copied to %v", c.Ways[0].Nodes)
	}
	if len(c.Ways[1].Nodes) != 1 {
		t.Errorf("single vertex way copied to %v", c.Ways[1].Nodes)
	}
}
