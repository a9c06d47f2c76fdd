package parallel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTopology is returned when the ways do not reduce to a single
	// simple path or a single simple cycle.
	ErrInvalidTopology = errors.New("parallel: ways must form a simple branchless path")

	// ErrDegenerateSegment is returned when two consecutive vertices of the
	// ordered path coincide, leaving a segment without a normal.
	ErrDegenerateSegment = errors.New("parallel: zero-length segment")

	// ErrInvalidReference is returned when the reference way or segment is
	// not part of the chain.
	ErrInvalidReference = errors.New("parallel: reference is not part of the chain")

	// ErrInvalidModifiers is returned when a drag starts with a modifier
	// combination that selects no drag behaviour.
	ErrInvalidModifiers = errors.New("parallel: invalid modifier combination")

	// ErrState is returned when a Session operation is called in a state
	// that does not allow it.
	ErrState = errors.New("parallel: operation not allowed in current state")
)

// TopologyError describes why a chain could not be reduced to a path.
// Vertex is the arena index of the offending vertex, or -1.
// Way is the chain index of the offending way, or -1.
type TopologyError struct {
	Reason string
	Vertex int
	Way    int
}

func (e *TopologyError) Error() string {
	switch {
	case e.Vertex >= 0:
		return fmt.Sprintf("%v: %s (vertex %d)", ErrInvalidTopology, e.Reason, e.Vertex)
	case e.Way >= 0:
		return fmt.Sprintf("%v: %s (way %d)", ErrInvalidTopology, e.Reason, e.Way)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidTopology, e.Reason)
}

// Is reports ErrInvalidTopology as the kind of the error.
func (e *TopologyError) Is(target error) bool { return target == ErrInvalidTopology }

// DegenerateSegmentError reports the zero-length segment Index of the
// ordered path, which starts and ends at At.
type DegenerateSegmentError struct {
	Index int
	At    Point
}

func (e *DegenerateSegmentError) Error() string {
	return fmt.Sprintf("%v: segment %d at %v", ErrDegenerateSegment, e.Index, e.At)
}

// Is reports ErrDegenerateSegment as the kind of the error.
func (e *DegenerateSegmentError) Is(target error) bool { return target == ErrDegenerateSegment }

// ReferenceError reports a reference that does not resolve. Index is -1
// when only a way was referenced.
type ReferenceError struct {
	Way   int
	Index int
}

func (e *ReferenceError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: way %d", ErrInvalidReference, e.Way)
	}
	return fmt.Sprintf("%v: way %d segment %d", ErrInvalidReference, e.Way, e.Index)
}

// Is reports ErrInvalidReference as the kind of the error.
func (e *ReferenceError) Is(target error) bool { return target == ErrInvalidReference }

// Code is a coarse error category used in log attributes and exit codes.
type Code string

const (
	CodeUnknown    Code = "unknown"
	CodeTopology   Code = "topology"
	CodeDegenerate Code = "degenerate"
	CodeReference  Code = "reference"
	CodeModifiers  Code = "modifiers"
	CodeState      Code = "state"
)

// Classify maps an error to its Code using errors.Is only.
func Classify(err error) Code {
	switch {
	case err == nil:
		return CodeUnknown
	case errors.Is(err, ErrInvalidTopology):
		return CodeTopology
	case errors.Is(err, ErrDegenerateSegment):
		return CodeDegenerate
	case errors.Is(err, ErrInvalidReference):
		return CodeReference
	case errors.Is(err, ErrInvalidModifiers):
		return CodeModifiers
	case errors.Is(err, ErrState):
		return CodeState
	}
	return CodeUnknown
}
