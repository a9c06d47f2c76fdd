package parallel

import "fmt"

// ChangeSetLabel is the label of the change set produced by a commit.
const ChangeSetLabel = "Make parallel way(s)"

// OpKind is the kind of a create-operation.
type OpKind int

const (
	// OpCreateVertex creates Copy.Nodes[Op.Index].
	OpCreateVertex OpKind = iota
	// OpCreateWay creates Copy.Ways[Op.Index].
	OpCreateWay
)

// String returns the string representation of the operation kind.
func (k OpKind) String() string {
	switch k {
	case OpCreateVertex:
		return "create-vertex"
	case OpCreateWay:
		return "create-way"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is a single create-operation.
type Op struct {
	Kind  OpKind
	Index int
}

// ChangeSet is the flat, ordered list of create-operations for the host's
// undo log. Vertices come before the ways that reference them, in path
// order; the repeated end of a closed path is created once.
type ChangeSet struct {
	Label string
	Ops   []Op
	Copy  *Copy
}

func newChangeSet(c *Copy, p *Path) *ChangeSet {
	vertices := len(p.nodes)
	if p.closed {
		vertices--
	}
	cs := &ChangeSet{
		Label: ChangeSetLabel,
		Ops:   make([]Op, 0, vertices+len(c.Ways)),
		Copy:  c,
	}
	for _, n := range p.nodes[:vertices] {
		cs.Ops = append(cs.Ops, Op{Kind: OpCreateVertex, Index: n})
	}
	for i := range c.Ways {
		cs.Ops = append(cs.Ops, Op{Kind: OpCreateWay, Index: i})
	}
	return cs
}

// Vertices returns the number of create-vertex operations.
func (cs *ChangeSet) Vertices() int {
	n := 0
	for _, op := range cs.Ops {
		if op.Kind == OpCreateVertex {
			n++
		}
	}
	return n
}
