package parallel

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gg-parallel/config"
)

// State is the state of a drag gesture.
type State int

const (
	// StateIdle has no chain; Arm starts a gesture.
	StateIdle State = iota
	// StateArmed has a built path and a materialized copy but no offset yet.
	StateArmed
	// StateOffsetting has applied at least one offset.
	StateOffsetting
	// StateCommitted is reported to the logger when a gesture is committed;
	// the session itself returns to StateIdle.
	StateCommitted
	// StateAborted is reported to the logger when a gesture is discarded;
	// the session itself returns to StateIdle.
	StateAborted
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateOffsetting:
		return "offsetting"
	case StateCommitted:
		return "committed"
	case StateAborted:
		return "aborted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// DragResult is the outcome of one pointer move.
type DragResult struct {
	// Distance is the signed, possibly snapped offset that was applied.
	Distance float64
	// Snapped reports whether snapping was active for this move.
	Snapped bool
	// Foot is the closest point to Pointer on the reference line. Foot and
	// Pointer are the ends of the helper line.
	Foot    Point
	Pointer Point
	// Points are the new positions in path order.
	Points []Point
}

// Session drives one drag gesture at a time:
// Idle -> Armed -> Offsetting -> (Commit | Abort) -> Idle.
//
// A Session is not safe for concurrent use; it is driven from the
// goroutine that delivers pointer events.
type Session struct {
	cfg    config.Config
	logger *slog.Logger

	state State
	ref   Segment
	ways  *Ways
	last  DragResult
}

// NewSession returns an idle session using the preferences cfg.
func NewSession(cfg config.Config, opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{cfg: cfg, logger: o.logger}
}

func (s *Session) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Config returns the preferences of the session.
func (s *Session) Config() config.Config { return s.cfg }

// Ways returns the parallel ways of the running gesture, or nil when idle.
func (s *Session) Ways() *Ways { return s.ways }

// Reference returns the reference segment of the running gesture.
func (s *Session) Reference() Segment { return s.ref }

// Last returns the result of the most recent Drag.
func (s *Session) Last() DragResult { return s.last }

// Arm starts a gesture on chain with the segment ref as reference. The way
// of ref fixes the orientation; chain.Ref is ignored. Tags are copied
// according to the modifiers held when the gesture starts.
//
// On any error the session stays idle.
func (s *Session) Arm(chain SourceChain, ref SegmentRef, mods config.Modifiers) error {
	if s.state != StateIdle {
		return fmt.Errorf("%w: arm in state %v", ErrState, s.state)
	}
	if !s.cfg.DragAllowed(mods) {
		s.log().Warn("parallel: gesture rejected", "code", CodeModifiers)
		return ErrInvalidModifiers
	}
	chain.Ref = ref.Way
	ways, err := NewWays(chain, s.cfg.CopyTags(mods))
	if err != nil {
		s.log().Warn("parallel: gesture rejected", "code", Classify(err), "err", err)
		return err
	}
	seg, err := chain.Segment(ref)
	if err != nil {
		s.log().Warn("parallel: gesture rejected", "code", Classify(err), "err", err)
		return err
	}
	s.ways, s.ref, s.last = ways, seg, DragResult{}
	s.state = StateArmed
	s.log().Debug("parallel: armed", "ways", len(chain.Ways), "reference", ref)
	return nil
}

// ArmSelection starts a gesture from a selection the way a press on way
// ref does: if ref is not selected, the selection is replaced by ref alone.
// The selected ways are resolved with lookup and segment index of ref
// becomes the reference segment.
func (s *Session) ArmSelection(sel *Selection, lookup func(WayID) (Way, bool), ref WayID, index int, mods config.Modifiers) error {
	if s.state != StateIdle {
		return fmt.Errorf("%w: arm in state %v", ErrState, s.state)
	}
	sel.Ensure(ref)
	chain, err := sel.Chain(lookup, ref)
	if err != nil {
		s.log().Warn("parallel: gesture rejected", "code", Classify(err), "err", err)
		return err
	}
	return s.Arm(chain, SegmentRef{Way: chain.Ref, Index: index}, mods)
}

// Drag offsets the copy to the pointer position: the offset is the signed
// distance from pointer to the reference line, snapped when snapping is
// active with mods held.
func (s *Session) Drag(pointer Point, mods config.Modifiers) (DragResult, error) {
	if s.state != StateArmed && s.state != StateOffsetting {
		return DragResult{}, fmt.Errorf("%w: drag in state %v", ErrState, s.state)
	}
	d, foot := SignedDistance(s.ref, pointer)
	snap := s.cfg.Snap(mods)
	if snap {
		d = Snap(d, s.cfg.SnapThreshold)
	}
	s.last = DragResult{
		Distance: d,
		Snapped:  snap,
		Foot:     foot,
		Pointer:  pointer,
		Points:   s.ways.ChangeOffset(d),
	}
	s.state = StateOffsetting
	s.log().Debug("parallel: offset", "distance", d, "snapped", snap)
	return s.last, nil
}

// Commit ends the gesture and returns the change set that creates the
// copy at its last offset.
func (s *Session) Commit() (*ChangeSet, error) {
	if s.state != StateOffsetting {
		return nil, fmt.Errorf("%w: commit in state %v", ErrState, s.state)
	}
	cs := s.ways.ChangeSet()
	s.log().Info("parallel: committed",
		"state", StateCommitted,
		"distance", s.last.Distance,
		"vertices", cs.Vertices(),
		"ways", len(cs.Copy.Ways))
	s.reset()
	return cs, nil
}

// Abort discards the running gesture, if any.
func (s *Session) Abort() {
	if s.state == StateIdle {
		return
	}
	s.log().Debug("parallel: aborted", "state", StateAborted, "from", s.state)
	s.reset()
}

func (s *Session) reset() {
	s.state = StateIdle
	s.ways = nil
	s.ref = Segment{}
	s.last = DragResult{}
}
