package parallel

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Node is a vertex of a Copy. Source is the ID of the vertex it was copied
// from; the node itself has no host identity until it is committed.
type Node struct {
	Pos    Point
	Tags   Tags
	Source VertexID
}

// CopiedWay is a way of a Copy. Nodes are indices into Copy.Nodes.
type CopiedWay struct {
	Nodes  []int
	Tags   Tags
	Source WayID
}

// Copy is an independent copy of a SourceChain. Ways that shared an
// endpoint in the source share the corresponding node in the copy;
// interior vertices are copied one to one and never shared.
type Copy struct {
	Nodes []Node
	Ways  []CopiedWay
}

// NewCopy deep-copies chain. Positions are always copied; tags of vertices
// and ways only when copyTags is set. The chain is not modified.
func NewCopy(chain SourceChain, copyTags bool) *Copy {
	c := &Copy{
		Nodes: make([]Node, 0, countVertices(chain)),
		Ways:  make([]CopiedWay, 0, len(chain.Ways)),
	}

	// Only first/last vertices can be shared between ways.
	endpoints := make(map[VertexID]int, 2*len(chain.Ways))
	endpoint := func(v Vertex) int {
		if i, ok := endpoints[v.ID]; ok {
			return i
		}
		i := c.add(v, copyTags)
		endpoints[v.ID] = i
		return i
	}
	for _, w := range chain.Ways {
		if len(w.Vertices) == 0 {
			continue
		}
		endpoint(w.First())
		endpoint(w.Last())
	}

	for _, w := range chain.Ways {
		cw := CopiedWay{Source: w.ID}
		switch n := len(w.Vertices); n {
		case 0:
		case 1:
			cw.Nodes = []int{endpoints[w.First().ID]}
		default:
			cw.Nodes = make([]int, 0, n)
			cw.Nodes = append(cw.Nodes, endpoints[w.First().ID])
			for _, v := range w.Vertices[1 : n-1] {
				cw.Nodes = append(cw.Nodes, c.add(v, copyTags))
			}
			cw.Nodes = append(cw.Nodes, endpoints[w.Last().ID])
		}
		if copyTags {
			cw.Tags = cloneTags(w.Tags)
		}
		c.Ways = append(c.Ways, cw)
	}
	return c
}

func (c *Copy) add(v Vertex, copyTags bool) int {
	n := Node{Pos: v.Pos, Source: v.ID}
	if copyTags {
		mustCopy(&n, &v)
	}
	c.Nodes = append(c.Nodes, n)
	return len(c.Nodes) - 1
}

// Polylines returns the current positions of every way, in way order.
func (c *Copy) Polylines() [][]Point {
	out := make([][]Point, len(c.Ways))
	for i, w := range c.Ways {
		pts := make([]Point, len(w.Nodes))
		for j, n := range w.Nodes {
			pts[j] = c.Nodes[n].Pos
		}
		out[i] = pts
	}
	return out
}

// Move sets the position of the nodes listed in order to pts.
// order and pts must have the same length.
func (c *Copy) Move(order []int, pts []Point) {
	for i, n := range order {
		c.Nodes[n].Pos = pts[i]
	}
}

func countVertices(chain SourceChain) int {
	n := 0
	for _, w := range chain.Ways {
		n += len(w.Vertices)
	}
	return n
}

func cloneTags(t Tags) Tags {
	if len(t) == 0 {
		return nil
	}
	var out Tags
	mustCopy(&out, &t)
	return out
}

// mustCopy deep-copies matching fields from src into dst. The types passed
// here are fixed, so a failure is a programming error.
func mustCopy(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("parallel: copy %T: %v", src, err))
	}
}
