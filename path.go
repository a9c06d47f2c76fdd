package parallel

import "slices"

// Path is the ordered, oriented baseline of a chain. Its points and normals
// are fixed at construction; offsets are always computed from them.
type Path struct {
	nodes   []int
	pts     []Point
	normals []Vec2
	closed  bool
	flipped bool
}

// BuildPath reduces the ways of c to a single ordered path running in the
// direction of way ref. It fails with ErrInvalidTopology when the ways
// branch, are disconnected or missing, ErrInvalidReference when ref is not a way of
// c, and ErrDegenerateSegment when two consecutive vertices coincide.
func BuildPath(c *Copy, ref int) (*Path, error) {
	order, err := spanningPath(c.Ways)
	if err != nil {
		return nil, err
	}
	if ref < 0 || ref >= len(c.Ways) {
		return nil, &ReferenceError{Way: ref, Index: -1}
	}

	p := &Path{
		nodes:  order,
		closed: order[0] == order[len(order)-1],
	}
	if !followsReference(order, c.Ways[ref].Nodes, p.closed) {
		slices.Reverse(order)
		p.flipped = true
	}

	p.pts = make([]Point, len(order))
	for i, n := range order {
		p.pts[i] = c.Nodes[n].Pos
	}
	if p.normals, err = Normals(p.pts); err != nil {
		return nil, err
	}
	return p, nil
}

// BuildOrderedPath builds the path of chain on an untagged copy, oriented
// along chain.Ref. Use NewWays to keep the copy for materialization.
func BuildOrderedPath(chain SourceChain) (*Path, error) {
	return BuildPath(NewCopy(chain, false), chain.Ref)
}

// Len returns the number of vertices of the path, counting the repeated
// start of a closed path twice.
func (p *Path) Len() int { return len(p.pts) }

// Closed reports whether the path starts and ends at the same vertex.
func (p *Path) Closed() bool { return p.closed }

// Flipped reports whether the spanning order was reversed to follow the
// reference way.
func (p *Path) Flipped() bool { return p.flipped }

// Nodes returns the Copy node indices in path order.
func (p *Path) Nodes() []int { return append([]int(nil), p.nodes...) }

// Points returns a copy of the baseline positions.
func (p *Path) Points() []Point { return append([]Point(nil), p.pts...) }

// Normals returns a copy of the per-segment unit normals.
func (p *Path) Normals() []Vec2 { return append([]Vec2(nil), p.normals...) }

// Offset returns the baseline offset by d. See the package-level Offset.
func (p *Path) Offset(d float64) []Point {
	return Offset(p.pts, p.normals, p.closed, d)
}
