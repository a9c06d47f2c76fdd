package parallel

// VertexID identifies a source vertex. Only equality is meaningful: two
// ways share an endpoint when their end vertices carry the same ID.
type VertexID int64

// WayID identifies a source way.
type WayID int64

// Tags are the key/value attributes of a vertex or a way.
type Tags map[string]string

// Vertex is a source vertex, passed by value.
type Vertex struct {
	ID   VertexID
	Pos  Point
	Tags Tags
}

// Way is an ordered sequence of at least two vertices. A way whose first
// and last vertex share an ID is closed.
type Way struct {
	ID       WayID
	Vertices []Vertex
	Tags     Tags
}

// First returns the first vertex of the way.
func (w Way) First() Vertex { return w.Vertices[0] }

// Last returns the last vertex of the way.
func (w Way) Last() Vertex { return w.Vertices[len(w.Vertices)-1] }

// Closed reports whether the way starts and ends at the same vertex.
func (w Way) Closed() bool {
	return len(w.Vertices) > 1 && w.First().ID == w.Last().ID
}

// Segment returns the i-th segment of the way.
func (w Way) Segment(i int) (Segment, bool) {
	if i < 0 || i+1 >= len(w.Vertices) {
		return Segment{}, false
	}
	return Segment{A: w.Vertices[i].Pos, B: w.Vertices[i+1].Pos}, true
}

// SourceChain is a set of ways submitted together. Ref is the index of the
// way that fixes the orientation of the result.
type SourceChain struct {
	Ways []Way
	Ref  int
}

// SegmentRef addresses segment Index of way Way within a SourceChain.
type SegmentRef struct {
	Way   int
	Index int
}

// Segment resolves ref against the chain.
func (c SourceChain) Segment(ref SegmentRef) (Segment, error) {
	if ref.Way < 0 || ref.Way >= len(c.Ways) {
		return Segment{}, &ReferenceError{Way: ref.Way, Index: ref.Index}
	}
	s, ok := c.Ways[ref.Way].Segment(ref.Index)
	if !ok {
		return Segment{}, &ReferenceError{Way: ref.Way, Index: ref.Index}
	}
	return s, nil
}
