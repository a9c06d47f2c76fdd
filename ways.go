package parallel

// Ways is a materialized parallel copy of a chain together with the
// baseline path it is offset from.
type Ways struct {
	copy *Copy
	path *Path
}

// NewWays copies chain (with tags if copyTags is set) and builds the
// ordered baseline of the copy, oriented along chain.Ref. From here on only
// the copy is used; the source chain is never touched.
func NewWays(chain SourceChain, copyTags bool) (*Ways, error) {
	c := NewCopy(chain, copyTags)
	p, err := BuildPath(c, chain.Ref)
	if err != nil {
		return nil, err
	}
	Logger().Debug("parallel: path built",
		"vertices", p.Len(),
		"ways", len(c.Ways),
		"closed", p.Closed(),
		"reversed", p.Flipped())
	return &Ways{copy: c, path: p}, nil
}

// Copy returns the materialized copy. Its node positions reflect the last
// ChangeOffset.
func (w *Ways) Copy() *Copy { return w.copy }

// Path returns the baseline path.
func (w *Ways) Path() *Path { return w.path }

// ChangeOffset moves the copy to distance d from the baseline and returns
// the new positions in path order. Positive d offsets to the left of the
// reference way.
func (w *Ways) ChangeOffset(d float64) []Point {
	pts := w.path.Offset(d)
	w.copy.Move(w.path.nodes, pts)
	return pts
}

// ChangeSet returns the create-operations that commit the copy.
func (w *Ways) ChangeSet() *ChangeSet {
	return newChangeSet(w.copy, w.path)
}
