// Package parallel computes parallel (offset) copies of connected polylines.
//
// # Overview
//
// A set of ways that share only their first and last vertices is reduced to
// a single ordered vertex sequence, oriented along a reference way, and then
// offset by a signed distance. Every vertex of the copy is the intersection
// of its two neighbouring segments translated along their normals, so the
// copy stays parallel to the source at every joint.
//
// # Quick Start
//
//	chain := parallel.SourceChain{Ways: ways, Ref: 0}
//
//	pw, err := parallel.NewWays(chain, true)
//	if err != nil {
//	    // errors.Is(err, parallel.ErrInvalidTopology) for branching selections
//	}
//
//	pw.ChangeOffset(2.5)   // to the left of the reference way
//	pw.ChangeOffset(-2.5)  // to the right
//
//	cs := pw.ChangeSet()   // create-operations for the host's undo log
//
// # Pipeline
//
// The work is split into small steps that can also be used on their own:
//   - NewCopy: deep copy of the chain, keeping shared endpoints shared
//   - BuildPath: spanning path, orientation and normals of the copy
//   - Normals: unit left-hand normal per segment
//   - Offset: new vertex positions for a distance, always from the baseline
//
// # Interactive use
//
// Session wraps the pipeline in the drag gesture state machine
// (Idle, Armed, Offsetting) and turns pointer positions into signed,
// optionally snapped distances from the reference segment. Preferences are
// passed in as an immutable config.Config.
//
// # Coordinate System
//
// All calculations are planar (projected coordinates). Positive distances
// offset to the left of the path direction, which is the side the segment
// normals point to.
package parallel
